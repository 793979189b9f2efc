package mockapi

import "github.com/splitmacha/splitmacha/internal/models"

// SeedData is the dataset the mock backend starts with.
type SeedData struct {
	Users       []models.User
	Groups      []models.Group
	Expenses    []models.Expense
	Friends     []models.Friend
	Settlements []models.Settlement
}

// DefaultSeed returns the fixture dataset used for local development.
// "you@example.com" is the account the app logs in with out of the box.
func DefaultSeed() SeedData {
	const (
		stamp = "2024-01-15T10:00:00Z"
		you   = "user-you"
		priya = "user-priya"
		arjun = "user-arjun"
		meera = "user-meera"
	)

	return SeedData{
		Users: []models.User{
			{
				ID:                you,
				Name:              "You",
				Email:             "you@example.com",
				Phone:             "+919800000001",
				AvatarURL:         "https://i.pravatar.cc/150?u=you",
				FirebaseUID:       "firebase-you",
				IsActive:          true,
				PreferredCurrency: "INR",
				CreatedAt:         stamp,
				UpdatedAt:         stamp,
			},
			{
				ID:                priya,
				Name:              "Priya Sharma",
				Email:             "priya@example.com",
				Phone:             "+919800000002",
				AvatarURL:         "https://i.pravatar.cc/150?u=priya",
				FirebaseUID:       "firebase-priya",
				IsActive:          true,
				PreferredCurrency: "INR",
				CreatedAt:         stamp,
				UpdatedAt:         stamp,
			},
			{
				ID:                arjun,
				Name:              "Arjun Patel",
				Email:             "arjun@example.com",
				AvatarURL:         "https://i.pravatar.cc/150?u=arjun",
				FirebaseUID:       "firebase-arjun",
				IsActive:          true,
				PreferredCurrency: "INR",
				CreatedAt:         stamp,
				UpdatedAt:         stamp,
			},
			{
				ID:                meera,
				Name:              "Meera Iyer",
				Email:             "meera@example.com",
				AvatarURL:         "https://i.pravatar.cc/150?u=meera",
				FirebaseUID:       "firebase-meera",
				IsActive:          true,
				PreferredCurrency: "INR",
				CreatedAt:         stamp,
				UpdatedAt:         stamp,
			},
		},
		Groups: []models.Group{
			{
				ID:            "group-flat",
				Name:          "Flat 42",
				Description:   "Rent, groceries, and everything else",
				CreatedBy:     you,
				Members:       []string{you, priya, arjun},
				TotalExpenses: 4650,
				Currency:      "INR",
				IsActive:      true,
				CreatedAt:     stamp,
				UpdatedAt:     stamp,
			},
			{
				ID:            "group-goa",
				Name:          "Goa Trip",
				Description:   "December long weekend",
				CreatedBy:     priya,
				Members:       []string{you, priya, meera},
				TotalExpenses: 12400,
				Currency:      "INR",
				IsActive:      true,
				CreatedAt:     stamp,
				UpdatedAt:     stamp,
			},
		},
		Expenses: []models.Expense{
			{
				ID:          "expense-groceries",
				GroupID:     "group-flat",
				GroupName:   "Flat 42",
				Description: "Weekly groceries",
				Amount:      1850,
				Currency:    "INR",
				Category:    "food",
				PaidBy:      you,
				PaidByName:  "You",
				SplitMethod: models.SplitEqual,
				SplitAmong:  []string{you, priya, arjun},
				ExpenseDate: stamp,
				Status:      models.ExpenseActive,
				CreatedBy:   you,
				CreatedAt:   stamp,
				UpdatedAt:   stamp,
			},
			{
				ID:          "expense-wifi",
				GroupID:     "group-flat",
				GroupName:   "Flat 42",
				Description: "WiFi bill",
				Amount:      800,
				Currency:    "INR",
				Category:    "utilities",
				PaidBy:      priya,
				PaidByName:  "Priya Sharma",
				SplitMethod: models.SplitEqual,
				SplitAmong:  []string{you, priya, arjun},
				ExpenseDate: stamp,
				Status:      models.ExpenseActive,
				CreatedBy:   priya,
				CreatedAt:   stamp,
				UpdatedAt:   stamp,
			},
			{
				ID:          "expense-scuba",
				GroupID:     "group-goa",
				GroupName:   "Goa Trip",
				Description: "Scuba diving",
				Amount:      7500,
				Currency:    "INR",
				Category:    "entertainment",
				PaidBy:      meera,
				PaidByName:  "Meera Iyer",
				SplitMethod: models.SplitExact,
				SplitAmong:  []string{you, priya, meera},
				SplitDetails: []models.SplitDetail{
					{UserID: you, Amount: 2500},
					{UserID: priya, Amount: 2500},
					{UserID: meera, Amount: 2500},
				},
				ExpenseDate: stamp,
				Status:      models.ExpenseActive,
				CreatedBy:   meera,
				CreatedAt:   stamp,
				UpdatedAt:   stamp,
			},
		},
		Friends: []models.Friend{
			{
				ID:            "friend-priya",
				UserID:        you,
				FriendID:      priya,
				FriendName:    "Priya Sharma",
				FriendEmail:   "priya@example.com",
				Status:        models.FriendAccepted,
				Balance:       350,
				BalanceStatus: models.BalanceOwed,
				SharedGroups:  []string{"group-flat", "group-goa"},
				CreatedAt:     stamp,
				AcceptedAt:    stamp,
			},
			{
				ID:            "friend-arjun",
				UserID:        you,
				FriendID:      arjun,
				FriendName:    "Arjun Patel",
				FriendEmail:   "arjun@example.com",
				Status:        models.FriendAccepted,
				Balance:       620,
				BalanceStatus: models.BalanceOwe,
				SharedGroups:  []string{"group-flat"},
				CreatedAt:     stamp,
				AcceptedAt:    stamp,
			},
			{
				ID:            "friend-meera",
				UserID:        you,
				FriendID:      meera,
				FriendName:    "Meera Iyer",
				FriendEmail:   "meera@example.com",
				Status:        models.FriendPending,
				Balance:       0,
				BalanceStatus: models.BalanceSettled,
				SharedGroups:  []string{"group-goa"},
				CreatedAt:     stamp,
			},
		},
		Settlements: []models.Settlement{
			{
				ID:            "settlement-rent",
				GroupID:       "group-flat",
				GroupName:     "Flat 42",
				FromUserID:    arjun,
				FromUserName:  "Arjun Patel",
				ToUserID:      you,
				ToUserName:    "You",
				Amount:        1200,
				Currency:      "INR",
				PaymentMethod: models.PaymentUPI,
				Status:        models.SettlementCompleted,
				SettledAt:     stamp,
				CreatedAt:     stamp,
			},
		},
	}
}
