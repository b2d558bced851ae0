package domain

// Turn is one completed question/answer exchange.
type Turn struct {
	Question string
	Answer   string
}
