package main

const (
	panelNone   = ""
	panelHouses = "houses"
	panelLine   = "line"
)

var panelIDs = []string{panelHouses, panelLine}

// panelState is the bottom menu selection. At most one info panel is open.
type panelState struct {
	active string
}

// toggle opens id, or closes it when it is already open.
func (p *panelState) toggle(id string) {
	if p.active == id {
		p.active = panelNone
		return
	}
	for _, known := range panelIDs {
		if known == id {
			p.active = id
			return
		}
	}
}

func (p *panelState) close() {
	p.active = panelNone
}

func (p *panelState) isOpen(id string) bool {
	return id != panelNone && p.active == id
}
