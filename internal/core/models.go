package core

import "time"

// Categories an expense may belong to. The set is fixed; anything else is
// rejected at creation time.
const (
	CategoryFood          = "food"
	CategoryUtilities     = "utilities"
	CategoryBills         = "bills"
	CategoryMiscellaneous = "miscellaneous"
)

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ExpenseMessage struct {
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
}

// Session is the result of a successful registration or login: the user's
// identity plus a signed stateless token.
type Session struct {
	UserID   string
	Username string
	Token    string
}

// Identity is the subject recovered from a verified session token.
type Identity struct {
	UserID   string
	Username string
}

type ExpenseRecord struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	Month     int       `json:"month"`
	Year      int       `json:"year"`
}
