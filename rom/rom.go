// Copyright 2016, Alessandro Gatti

// Package rom loads BS83B08A-3 code images: little-endian 16-bit words,
// one per code address, at most 0x800 words per image.
package rom

import (
	"encoding/binary"
	"io"
	"iter"
	"os"
)

// MAX_IMAGE_SIZE is the code file size ceiling in bytes, matching the
// 0x800-word MCU code memory.
const MAX_IMAGE_SIZE = 0x1000

// Image is a loaded code image.
type Image struct {
	Data []uint16
}

// Words iterates over the image in file order as (address, word) pairs.
func (img *Image) Words() iter.Seq2[uint16, uint16] {
	return func(yield func(address, word uint16) bool) {
		for n, word := range img.Data {
			if !yield(uint16(n), word) {
				return
			}
		}
	}
}

// Read loads a code image from a byte stream. The stream must contain at
// least one word, a whole number of words, and no more than
// MAX_IMAGE_SIZE bytes.
func Read(r io.Reader) (img *Image, err error) {
	raw, err := io.ReadAll(io.LimitReader(r, MAX_IMAGE_SIZE+2))
	if err != nil {
		return
	}

	switch {
	case len(raw) == 0:
		err = ErrNoCode
	case len(raw)%2 == 1:
		err = ErrUnaligned
	case len(raw) > MAX_IMAGE_SIZE:
		err = ErrTooBig
	}
	if err != nil {
		return
	}

	img = &Image{Data: make([]uint16, len(raw)/2)}
	for n := range img.Data {
		img.Data[n] = binary.LittleEndian.Uint16(raw[n*2:])
	}

	return
}

// LoadFile loads a code image from disk. Size and alignment are checked
// against the file metadata before any code is read, and load failures
// carry the offending path.
func LoadFile(path string) (img *Image, err error) {
	defer func() {
		if err != nil {
			err = &ErrImage{Path: path, Err: err}
		}
	}()

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		err = ErrNotAFile
		return
	}

	switch {
	case info.Size() == 0:
		err = ErrNoCode
		return
	case info.Size()%2 == 1:
		err = ErrUnaligned
		return
	case info.Size() > MAX_IMAGE_SIZE:
		err = ErrTooBig
		return
	}

	source, err := os.Open(path)
	if err != nil {
		return
	}
	defer source.Close()

	img, err = Read(source)

	return
}
