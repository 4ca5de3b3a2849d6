package midiin

import (
	"github.com/gomidi/midi"
	"github.com/gomidi/midi/midimessage/channel"
	"github.com/sirupsen/logrus"

	"github.com/minikomi/pianolight/internal/keystate"
	"github.com/minikomi/pianolight/internal/note"
)

const (
	statusNoteOff = 0x8
	statusNoteOn  = 0x9
)

// Decode turns a raw channel voice message into a channel.NoteOn or
// channel.NoteOff. Anything else (short messages, other statuses, data bytes
// with the high bit set) decodes to nil.
func Decode(data []byte) midi.Message {
	if len(data) < 3 {
		return nil
	}
	status, key, velocity := data[0], data[1], data[2]
	if key > 0x7f || velocity > 0x7f {
		return nil
	}
	ch := channel.Channel(status & 0x0f)

	switch status >> 4 {
	case statusNoteOn:
		return ch.NoteOn(key, velocity)
	case statusNoteOff:
		return ch.NoteOff(key)
	}
	return nil
}

// Apply decodes data and writes the result into tbl. A note on with zero
// velocity releases the key.
func Apply(tbl *keystate.Table, data []byte) {
	switch m := Decode(data).(type) {
	case channel.NoteOn:
		n := note.AbsoluteNote(m.Key())
		if m.Velocity() > 0 {
			logrus.Debugf("pressed %s", n)
			tbl.Set(n, true)
		} else {
			logrus.Debugf("released %s", n)
			tbl.Set(n, false)
		}
	case channel.NoteOff:
		n := note.AbsoluteNote(m.Key())
		logrus.Debugf("released %s", n)
		tbl.Set(n, false)
	}
}

// Listener returns a callback suitable for connect.In.SetListener.
func Listener(tbl *keystate.Table) func(data []byte, deltaMicroseconds int64) {
	return func(data []byte, _ int64) {
		Apply(tbl, data)
	}
}
