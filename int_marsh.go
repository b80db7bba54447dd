// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Ints.

package bigdec

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const intGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface. The encoding is a version
// byte followed by one byte per digit, least significant first.
func (x Int) GobEncode() ([]byte, error) {
	a := x.nat()
	buf := make([]byte, 1+len(a))
	buf[0] = intGobVersion
	for i, d := range a {
		buf[1+i] = byte(d)
	}
	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Int) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Zero()
		return nil
	}

	if buf[0] != intGobVersion {
		return fmt.Errorf("bigdec: Int.GobDecode: encoding version %d not supported", buf[0])
	}

	a := nat(nil).make(len(buf) - 1)
	for i, b := range buf[1:] {
		if b >= 10 {
			return fmt.Errorf("bigdec: Int.GobDecode: invalid digit %d at position %d", b, i)
		}
		a[i] = Digit(b)
	}
	*z = Int{a.norm()}
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface. The text is the
// plain decimal representation of x, without separators.
func (x Int) MarshalText() (text []byte, err error) {
	return x.Append(nil), nil
}

// MarshalJSON implements the json.Marshaler interface. x is encoded as a JSON
// string holding its plain decimal representation.
func (x Int) MarshalJSON() ([]byte, error) {
	return json.Marshal(x.Text())
}
