// Copyright 2025 Course Pilot Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"fmt"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"

	"github.com/kaitongg-bit/course-pilot/core"
)

// Course records are stored in the MUS binary format. The serializers below
// are written by hand against the mus-go primitive serializers; fields are
// encoded in struct order, slices and maps with a varint length prefix, and
// timestamps as Unix microseconds (0 means the zero time).

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, varint.Uint64.Size(uint64(id)))
	varint.Uint64.Marshal(uint64(id), buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	v, _, err := varint.Uint64.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return core.ID(v), nil
}

// MarshalCourse serializes a Course to bytes.
func MarshalCourse(course *core.Course) []byte {
	buf := make([]byte, sizeCourse(course))
	n := varint.Uint64.Marshal(uint64(course.Id), buf)
	n += ord.String.Marshal(course.Code, buf[n:])
	n += ord.String.Marshal(course.Name, buf[n:])
	n += ord.String.Marshal(course.Description, buf[n:])
	n += ord.String.Marshal(course.Industry, buf[n:])
	n += ord.String.Marshal(course.Level, buf[n:])
	n += marshalStrings(course.Skills, buf[n:])
	n += marshalStrings(course.Tags, buf[n:])
	n += ord.String.Marshal(course.Keywords, buf[n:])
	n += marshalStrings(course.MeetingDays, buf[n:])
	n += marshalStrings(course.MeetingSlots, buf[n:])
	n += ord.String.Marshal(course.MeetingTime, buf[n:])
	n += ord.String.Marshal(course.Document, buf[n:])
	n += marshalVector(course.Vector, buf[n:])
	n += marshalStringMap(course.Raw, buf[n:])
	n += marshalTime(course.InsertedAt, buf[n:])
	marshalTime(course.UpdatedAt, buf[n:])
	return buf
}

// UnmarshalCourse deserializes a Course from bytes.
func UnmarshalCourse(data []byte) (*core.Course, error) {
	course, err := unmarshalCourse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return course, nil
}

func sizeCourse(c *core.Course) int {
	size := varint.Uint64.Size(uint64(c.Id))
	size += ord.String.Size(c.Code)
	size += ord.String.Size(c.Name)
	size += ord.String.Size(c.Description)
	size += ord.String.Size(c.Industry)
	size += ord.String.Size(c.Level)
	size += sizeStrings(c.Skills)
	size += sizeStrings(c.Tags)
	size += ord.String.Size(c.Keywords)
	size += sizeStrings(c.MeetingDays)
	size += sizeStrings(c.MeetingSlots)
	size += ord.String.Size(c.MeetingTime)
	size += ord.String.Size(c.Document)
	size += sizeVector(c.Vector)
	size += sizeStringMap(c.Raw)
	size += sizeTime(c.InsertedAt)
	size += sizeTime(c.UpdatedAt)
	return size
}

func unmarshalCourse(data []byte) (*core.Course, error) {
	var (
		c   core.Course
		n   int
		err error
	)
	next := func(m int) { n += m }

	id, m, err := varint.Uint64.Unmarshal(data[n:])
	if err != nil {
		return nil, err
	}
	next(m)
	c.Id = core.ID(id)

	for _, field := range []*string{
		&c.Code, &c.Name, &c.Description, &c.Industry, &c.Level,
	} {
		*field, m, err = ord.String.Unmarshal(data[n:])
		if err != nil {
			return nil, err
		}
		next(m)
	}

	if c.Skills, m, err = unmarshalStrings(data[n:]); err != nil {
		return nil, err
	}
	next(m)
	if c.Tags, m, err = unmarshalStrings(data[n:]); err != nil {
		return nil, err
	}
	next(m)
	if c.Keywords, m, err = ord.String.Unmarshal(data[n:]); err != nil {
		return nil, err
	}
	next(m)
	if c.MeetingDays, m, err = unmarshalStrings(data[n:]); err != nil {
		return nil, err
	}
	next(m)
	if c.MeetingSlots, m, err = unmarshalStrings(data[n:]); err != nil {
		return nil, err
	}
	next(m)
	if c.MeetingTime, m, err = ord.String.Unmarshal(data[n:]); err != nil {
		return nil, err
	}
	next(m)
	if c.Document, m, err = ord.String.Unmarshal(data[n:]); err != nil {
		return nil, err
	}
	next(m)
	if c.Vector, m, err = unmarshalVector(data[n:]); err != nil {
		return nil, err
	}
	next(m)
	if c.Raw, m, err = unmarshalStringMap(data[n:]); err != nil {
		return nil, err
	}
	next(m)
	if c.InsertedAt, m, err = unmarshalTime(data[n:]); err != nil {
		return nil, err
	}
	next(m)
	if c.UpdatedAt, _, err = unmarshalTime(data[n:]); err != nil {
		return nil, err
	}
	return &c, nil
}

func sizeStrings(v []string) int {
	size := varint.Int.Size(len(v))
	for _, s := range v {
		size += ord.String.Size(s)
	}
	return size
}

func marshalStrings(v []string, bs []byte) (n int) {
	n = varint.Int.Marshal(len(v), bs)
	for _, s := range v {
		n += ord.String.Marshal(s, bs[n:])
	}
	return n
}

func unmarshalStrings(bs []byte) (v []string, n int, err error) {
	length, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return nil, n, err
	}
	if length < 0 || length > len(bs)-n {
		return nil, n, ErrTruncatedData
	}
	if length == 0 {
		return nil, n, nil
	}
	v = make([]string, length)
	for i := range v {
		var m int
		if v[i], m, err = ord.String.Unmarshal(bs[n:]); err != nil {
			return nil, n, err
		}
		n += m
	}
	return v, n, nil
}

func sizeVector(v []float32) int {
	size := varint.Int.Size(len(v))
	for _, f := range v {
		size += varint.Float32.Size(f)
	}
	return size
}

func marshalVector(v []float32, bs []byte) (n int) {
	n = varint.Int.Marshal(len(v), bs)
	for _, f := range v {
		n += varint.Float32.Marshal(f, bs[n:])
	}
	return n
}

func unmarshalVector(bs []byte) (v []float32, n int, err error) {
	length, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return nil, n, err
	}
	if length < 0 || length > len(bs)-n {
		return nil, n, ErrTruncatedData
	}
	if length == 0 {
		return nil, n, nil
	}
	v = make([]float32, length)
	for i := range v {
		var m int
		if v[i], m, err = varint.Float32.Unmarshal(bs[n:]); err != nil {
			return nil, n, err
		}
		n += m
	}
	return v, n, nil
}

func sizeStringMap(v map[string]string) int {
	size := varint.Int.Size(len(v))
	for k, val := range v {
		size += ord.String.Size(k)
		size += ord.String.Size(val)
	}
	return size
}

func marshalStringMap(v map[string]string, bs []byte) (n int) {
	n = varint.Int.Marshal(len(v), bs)
	for k, val := range v {
		n += ord.String.Marshal(k, bs[n:])
		n += ord.String.Marshal(val, bs[n:])
	}
	return n
}

func unmarshalStringMap(bs []byte) (v map[string]string, n int, err error) {
	length, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return nil, n, err
	}
	if length < 0 || length > len(bs)-n {
		return nil, n, ErrTruncatedData
	}
	if length == 0 {
		return nil, n, nil
	}
	v = make(map[string]string, length)
	for i := 0; i < length; i++ {
		var (
			k, val string
			m      int
		)
		if k, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
			return nil, n, err
		}
		n += m
		if val, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
			return nil, n, err
		}
		n += m
		v[k] = val
	}
	return v, n, nil
}

func sizeTime(t time.Time) int {
	return varint.Int64.Size(timeMicro(t))
}

func marshalTime(t time.Time, bs []byte) int {
	return varint.Int64.Marshal(timeMicro(t), bs)
}

func unmarshalTime(bs []byte) (time.Time, int, error) {
	micro, n, err := varint.Int64.Unmarshal(bs)
	if err != nil || micro == 0 {
		return time.Time{}, n, err
	}
	return time.UnixMicro(micro).UTC(), n, nil
}

func timeMicro(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMicro()
}
