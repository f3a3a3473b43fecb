package domain

import "strings"

type UserSummary struct {
	ID       int64
	Username string
}

type User struct {
	ID            int64
	Username      string
	InvestmentIDs []int64
}

type UserIn struct {
	Username string
}

func NewUserIn(username string) (*UserIn, error) {
	if strings.TrimSpace(username) == "" {
		return nil, ValidationError{Field: "username", Reason: "must not be empty"}
	}
	return &UserIn{Username: username}, nil
}

// UserInvestmentRow is one row of the user / investment_user left join. A
// user without investments yields a single row with a nil InvestmentID.
type UserInvestmentRow struct {
	UserID       int64
	Username     string
	InvestmentID *int64
}

// NewUserFromRows shapes the rows for a single user. An empty slice means the
// user does not exist.
func NewUserFromRows(rows []UserInvestmentRow) (*User, error) {
	if len(rows) == 0 {
		return nil, NotFoundError{Kind: KindUser}
	}

	user := &User{
		ID:            rows[0].UserID,
		Username:      rows[0].Username,
		InvestmentIDs: []int64{},
	}
	for _, row := range rows {
		if row.InvestmentID != nil {
			user.InvestmentIDs = append(user.InvestmentIDs, *row.InvestmentID)
		}
	}

	return user, nil
}

type UserInvestmentLink struct {
	UserID       int64
	InvestmentID int64
}

type UserInvestments struct {
	UserID        int64
	InvestmentIDs []int64
}

// GroupInvestmentsByUser groups links by user. Groups appear in the order
// their user was first seen and ids keep the order of the input.
func GroupInvestmentsByUser(links []UserInvestmentLink) []UserInvestments {
	out := []UserInvestments{}
	indexByUser := map[int64]int{}
	for _, link := range links {
		i, ok := indexByUser[link.UserID]
		if !ok {
			i = len(out)
			indexByUser[link.UserID] = i
			out = append(out, UserInvestments{
				UserID:        link.UserID,
				InvestmentIDs: []int64{},
			})
		}
		out[i].InvestmentIDs = append(out[i].InvestmentIDs, link.InvestmentID)
	}

	return out
}
