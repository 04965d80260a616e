package models

type Answer struct {
	Text    string `json:"text"`
	IsRight bool   `json:"isRight"`
}
