package entity

// Cues receives one-shot sound triggers from entities
type Cues interface {
	Drop()
	Collect()
}

// NopCues discards all cues
type NopCues struct{}

func (NopCues) Drop()    {}
func (NopCues) Collect() {}
