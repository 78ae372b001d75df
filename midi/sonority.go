package midi

import (
	"sort"

	"github.com/jsphweid/tertian/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

type reducedEvent struct {
	AbsTicks  int64
	IsNoteOff bool
	Note      uint8
}

func snapshot(pressed map[uint8]bool, absTicks int64) model.Sonority {
	notes := make(model.Notes, 0, len(pressed))
	for note := range pressed {
		notes = append(notes, note)
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i] < notes[j]
	})
	return model.Sonority{
		AbsTickOffset: uint32(absTicks),
		Notes:         notes,
	}
}

// GetSonorities merges all tracks and reports the set of sounding keys at
// every tick where it changes, in tick order. Empty sets are dropped and
// channels are ignored.
func GetSonorities(s *smf.SMF) []model.Sonority {
	var reducedEvents []reducedEvent

	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				// running-status note offs arrive as zero-velocity note ons
				reducedEvents = append(reducedEvents, reducedEvent{
					AbsTicks:  absTicks,
					IsNoteOff: velocity == 0,
					Note:      key,
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, reducedEvent{
					AbsTicks:  absTicks,
					IsNoteOff: true,
					Note:      key,
				})
			}
		}
	}

	// earlier ticks first, note offs before note ons on the same tick
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].AbsTicks != reducedEvents[j].AbsTicks {
			return reducedEvents[i].AbsTicks < reducedEvents[j].AbsTicks
		}
		return reducedEvents[i].IsNoteOff && !reducedEvents[j].IsNoteOff
	})

	tickToSonority := make(map[int64]model.Sonority)
	pressed := make(map[uint8]bool)
	for _, evt := range reducedEvents {
		if evt.IsNoteOff {
			delete(pressed, evt.Note)
		} else {
			pressed[evt.Note] = true
		}
		tickToSonority[evt.AbsTicks] = snapshot(pressed, evt.AbsTicks)
	}

	var res []model.Sonority
	for _, son := range tickToSonority {
		if len(son.Notes) > 0 {
			res = append(res, son)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].AbsTickOffset < res[j].AbsTickOffset
	})
	return res
}
