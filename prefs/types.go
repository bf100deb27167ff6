// This file is part of GopherFC.
//
// GopherFC is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherFC is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherFC.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value is the type accepted by the Set() function of every preference type
// and returned by the Get() function.
type Value any

// pref is implemented by every type that can be added to a Disk.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hooks are embedded in every preference type.
type hooks struct {
	post func(value Value) error
}

// SetHookPost sets a function to be called after every call to Set(),
// whether or not the value changed. An error from the hook is returned by
// Set().
func (h *hooks) SetHookPost(f func(value Value) error) {
	h.post = f
}

func (h *hooks) afterSet(v Value) error {
	if h.post == nil {
		return nil
	}
	return h.post(v)
}

// Bool is a boolean preference. The zero value is false.
type Bool struct {
	hooks
	value atomic.Bool
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.value.Load())
}

// Set accepts a bool or a string. Any string other than "true" (in any case)
// is false.
func (p *Bool) Set(v Value) error {
	var b bool

	switch v := v.(type) {
	case bool:
		b = v
	case string:
		b = strings.EqualFold(strings.TrimSpace(v), "true")
	default:
		return fmt.Errorf("prefs: %T is not a valid value for a Bool", v)
	}

	p.value.Store(b)
	return p.afterSet(b)
}

// Get returns the value as a bool.
func (p *Bool) Get() Value {
	return p.value.Load()
}

// Reset to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// String is a string preference. Leading and trailing space is removed from
// any value.
type String struct {
	hooks
	value atomic.Pointer[string]
}

func (p *String) String() string {
	if s := p.value.Load(); s != nil {
		return *s
	}
	return ""
}

// Set accepts a value of any type. The value is converted with the %v verb.
func (p *String) Set(v Value) error {
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	p.value.Store(&s)
	return p.afterSet(s)
}

// Get returns the value as a string.
func (p *String) Get() Value {
	return p.String()
}

// Reset to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Int is an integer preference. The zero value is zero.
type Int struct {
	hooks
	value atomic.Int64
}

func (p *Int) String() string {
	return strconv.FormatInt(p.value.Load(), 10)
}

// Set accepts any of the int types or a string in decimal.
func (p *Int) Set(v Value) error {
	var n int64

	switch v := v.(type) {
	case int:
		n = int64(v)
	case int32:
		n = int64(v)
	case int64:
		n = v
	case string:
		var err error
		n, err = strconv.ParseInt(strings.TrimSpace(v), 10, 0)
		if err != nil {
			return fmt.Errorf("prefs: %q is not a valid value for an Int", v)
		}
	default:
		return fmt.Errorf("prefs: %T is not a valid value for an Int", v)
	}

	p.value.Store(n)
	return p.afterSet(int(n))
}

// Get returns the value as an int.
func (p *Int) Get() Value {
	return int(p.value.Load())
}

// Reset to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}
