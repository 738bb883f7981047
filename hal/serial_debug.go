package hal

import "errors"

type debugSerial struct {
	id   string
	l    Logger
	next SerialPort
}

// NewDebugSerial wraps next and logs every operation on it to l.
//
// Reads that would block are not logged, so polling loops stay quiet.
func NewDebugSerial(id string, l Logger, next SerialPort) SerialPort {
	return &debugSerial{id, getLogger(l), next}
}

func (s *debugSerial) ReadByte() (byte, error) {
	b, err := s.next.ReadByte()
	if err == nil {
		s.l.Printf("%5s <<  recv %#02x", s.id, b)
	} else if !errors.Is(err, ErrWouldBlock) {
		s.l.Printf("%5s <<  recv %+v", s.id, err)
	}
	return b, err
}

func (s *debugSerial) WriteByte(b byte) error {
	s.l.Printf("%5s >>  send %#02x", s.id, b)
	return s.next.WriteByte(b)
}

func (s *debugSerial) Write(p []byte) (int, error) {
	s.l.Printf("%5s >>  send(%d)", s.id, len(p))
	if len(p) > 0 {
		s.l.Printf("%s", hexDump(p))
	}
	n, err := s.next.Write(p)
	s.l.Printf("%5s <<  send %d %+v", s.id, n, err)
	return n, err
}

func (s *debugSerial) Flush() error {
	s.l.Printf("%5s >>  flush", s.id)
	err := s.next.Flush()
	s.l.Printf("%5s <<  flush %#v", s.id, err)
	return err
}
