package entity

type FlashCategory string

const (
	FlashSuccess FlashCategory = "success"
	FlashError   FlashCategory = "error"
)

// FlashMessage is shown once on the next page render of a session.
type FlashMessage struct {
	Category FlashCategory `json:"category"`
	Message  string        `json:"message"`
}
