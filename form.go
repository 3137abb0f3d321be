package main

type formOption struct {
	value string
	label string
}

var contactFields = []string{"name", "phone", "email", "projectType", "budget", "message"}

var projectTypeOptions = []formOption{
	{"", "เลือกประเภท"},
	{"house", "บ้านพักอาศัย"},
	{"resort", "รีสอร์ท/โรงแรม"},
	{"floating", "บ้านลอยน้ำ"},
	{"commercial", "อาคารพาณิชย์"},
	{"other", "อื่นๆ"},
}

var budgetOptions = []formOption{
	{"", "เลือกงบประมาณ"},
	{"under5", "ไม่เกิน 5 ล้าน"},
	{"5-10", "5 - 10 ล้าน"},
	{"10-20", "10 - 20 ล้าน"},
	{"over20", "มากกว่า 20 ล้าน"},
}

const submitNotice = "ขอบคุณที่ติดต่อเรา! เราจะติดต่อกลับโดยเร็วที่สุด"

// contactForm holds the quote request inputs. Submitting only records a
// snapshot.
type contactForm struct {
	values    map[string]string
	submitted []map[string]string
}

func newContactForm() *contactForm {
	f := &contactForm{values: make(map[string]string)}
	for _, name := range contactFields {
		f.values[name] = ""
	}
	return f
}

func (f *contactForm) set(name, value string) {
	f.values[name] = value
}

func (f *contactForm) get(name string) string {
	return f.values[name]
}

func (f *contactForm) snapshot() map[string]string {
	s := make(map[string]string, len(f.values))
	for k, v := range f.values {
		s[k] = v
	}
	return s
}

func (f *contactForm) submit() map[string]string {
	s := f.snapshot()
	f.submitted = append(f.submitted, s)
	return s
}
