package models

import "fmt"

type ResultEntry struct {
	Question string `json:"question"`
	// Chosen is the 1-based selection as typed, even when out of range.
	Chosen  int  `json:"chosen"`
	IsRight bool `json:"isRight"`
}

func (r ResultEntry) String() string {
	return fmt.Sprintf("%s -> %d => %t", r.Question, r.Chosen, r.IsRight)
}
