package utils

import (
	"errors"

	"github.com/speps/go-hashids/v2"
)

func newHashID(salt string) (*hashids.HashID, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 12
	return hashids.NewWithData(hd)
}

func GenHashID(salt string, id int) string {
	h, _ := newHashID(salt)
	e, _ := h.Encode([]int{id})
	return e
}

// DecodeHashID GenHashID 的逆运算
func DecodeHashID(salt string, hash string) (int, error) {
	h, err := newHashID(salt)
	if err != nil {
		return 0, err
	}
	ids, err := h.DecodeWithError(hash)
	if err != nil {
		return 0, err
	}
	if len(ids) != 1 {
		return 0, errors.New("invalid hash id")
	}
	return ids[0], nil
}
