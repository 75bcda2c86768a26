package mocks

import "github.com/user/dreamframes/pkg/ports"

// ProgressFactory is a mock implementation of ports.ProgressFactory that
// records every tracker it creates.
type ProgressFactory struct {
	Bars []*Progress
}

// Progress records progress updates.
type Progress struct {
	Total       int
	Description string
	Count       int
	Finished    bool
}

func (m *ProgressFactory) New(total int, description string) ports.Progress {
	p := &Progress{Total: total, Description: description}
	m.Bars = append(m.Bars, p)
	return p
}

func (p *Progress) Add(n int) { p.Count += n }
func (p *Progress) Finish()   { p.Finished = true }

var _ ports.ProgressFactory = (*ProgressFactory)(nil)
