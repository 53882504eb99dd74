package repository

import "errors"

var (
	ErrRedisConnection     = errors.New("redis connection error")
	ErrInvalidSkipData     = errors.New("invalid skip data")
	ErrInvalidDispatchData = errors.New("invalid dispatch data")
)
