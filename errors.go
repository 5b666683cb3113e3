package imgarray

import "errors"

var (
	ErrFileNotFound  = errors.New("imgarray: file not found")
	ErrDecodeFailed  = errors.New("imgarray: undecodable image")
	ErrEmptyImage    = errors.New("imgarray: empty image")
	ErrOutOfBounds   = errors.New("imgarray: index out of bounds")
	ErrShapeMismatch = errors.New("imgarray: shape mismatch")
	ErrInvalidShape  = errors.New("imgarray: invalid shape")
	ErrPixelLength   = errors.New("imgarray: pixel length does not match channel count")
)
