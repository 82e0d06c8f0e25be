// This file is part of mc6809.
//
// mc6809 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mc6809 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mc6809.  If not, see <https://www.gnu.org/licenses/>.

package remote

import (
	"encoding/binary"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/jetsetilly/mc6809/curated"
)

// stream treats the messages arriving on a websocket as a stream of bytes.
// outgoing messages are built with a message and sent whole
type stream struct {
	conn *websocket.Conn
	buf  []uint8
}

func (s *stream) recv() error {
	tp, msg, err := s.conn.ReadMessage()
	if err != nil {
		return err
	}
	if tp != websocket.BinaryMessage {
		return curated.Errorf(ProtocolError, "expected binary message")
	}
	s.buf = append(s.buf, msg...)
	return nil
}

// in returns the next n bytes of the stream
func (s *stream) in(n int) ([]uint8, error) {
	for len(s.buf) < n {
		if err := s.recv(); err != nil {
			return nil, err
		}
	}
	b := s.buf[:n]
	s.buf = s.buf[n:]
	return b, nil
}

func (s *stream) inB() (uint8, error) {
	b, err := s.in(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (s *stream) inW() (uint16, error) {
	b, err := s.in(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// a length prefixed string
func (s *stream) inS() (string, error) {
	n, err := s.inB()
	if err != nil {
		return "", err
	}
	b, err := s.in(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// expectAck reads the response to a command or event. a Fail response is
// returned as an error
func (s *stream) expectAck() error {
	b, err := s.inB()
	if err != nil {
		return err
	}
	switch Opcode(b) {
	case Ack:
		return nil
	case Fail:
		return curated.Errorf(PeerFail)
	}
	return curated.Errorf(ProtocolError, fmt.Sprintf("expected ack or fail (%#02x)", b))
}

func (s *stream) out(m *message) error {
	return s.conn.WriteMessage(websocket.BinaryMessage, m.buf)
}

// message is an outgoing message
type message struct {
	buf []uint8
}

func newMessage(op Opcode) *message {
	return &message{buf: []uint8{uint8(op)}}
}

func (m *message) appendB(v uint8) *message {
	m.buf = append(m.buf, v)
	return m
}

func (m *message) appendW(v uint16) *message {
	m.buf = binary.BigEndian.AppendUint16(m.buf, v)
	return m
}

// strings longer than 255 bytes are truncated
func (m *message) appendS(s string) *message {
	if len(s) > 255 {
		s = s[:255]
	}
	m.buf = append(m.buf, uint8(len(s)))
	m.buf = append(m.buf, s...)
	return m
}
