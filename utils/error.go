package utils

import "errors"

var ErrorNoStoredToken = errors.New("no stored token")

func ErrorPanic(err error) {
	if err != nil {
		panic(err)
	}
}
