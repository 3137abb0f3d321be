package main

import (
	"syscall/js"

	"github.com/crystalbridge/builderweb/dom"
)

type formInput struct {
	name, value string
}

type formChannels struct {
	input  chan formInput
	submit chan struct{}
}

// bindContactForm forwards edits and submissions of the quote request form.
// Pages without the form get no listeners.
func bindContactForm(doc js.Value) (*formChannels, dom.Listeners) {
	ch := &formChannels{
		input:  make(chan formInput),
		submit: make(chan struct{}),
	}
	el := doc.Call("getElementById", "contactForm")
	if el.IsNull() {
		return ch, nil
	}
	fillOptions(doc, "projectType", projectTypeOptions)
	fillOptions(doc, "budget", budgetOptions)

	form := dom.Target(el)
	var ls dom.Listeners
	ls.Add(form.OnInput(func(e dom.Event) {
		target := e.Target()
		name := target.Get("name")
		if name.IsUndefined() || name.String() == "" {
			return
		}
		ch.input <- formInput{name: name.String(), value: target.Get("value").String()}
	}))
	ls.Add(form.OnSubmit(func(e dom.Event) {
		e.PreventDefault()
		ch.submit <- struct{}{}
	}))
	return ch, ls
}

func fillOptions(doc js.Value, name string, options []formOption) {
	sel := doc.Call("querySelector", "select[name="+name+"]")
	if sel.IsNull() || sel.Get("options").Get("length").Int() > 0 {
		return
	}
	for _, o := range options {
		opt := doc.Call("createElement", "option")
		opt.Set("value", o.value)
		opt.Set("textContent", o.label)
		sel.Call("appendChild", opt)
	}
}

func notifySubmitted() {
	js.Global().Call("alert", submitNotice)
}
