package testutil

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
)

// Fixture is a pairing with the scores it should be updated to.
type Fixture struct {
	Home      string
	Away      string
	HomeScore int
	AwayScore int
}

// WorldCup is the canonical five-match board, listed in start order.
var WorldCup = []Fixture{
	{Home: "Mexico", Away: "Canada", HomeScore: 0, AwayScore: 5},
	{Home: "Spain", Away: "Brazil", HomeScore: 10, AwayScore: 2},
	{Home: "Germany", Away: "France", HomeScore: 2, AwayScore: 2},
	{Home: "Uruguay", Away: "Italy", HomeScore: 6, AwayScore: 6},
	{Home: "Argentina", Away: "Australia", HomeScore: 3, AwayScore: 1},
}

// WorldCupSummaryOrder lists "Home-Away" labels in the order the summary
// must return them once every WorldCup score has been applied.
var WorldCupSummaryOrder = []string{
	"Uruguay-Italy",
	"Spain-Brazil",
	"Mexico-Canada",
	"Argentina-Australia",
	"Germany-France",
}

// RandomTeams returns n distinct team names. Names are suffixed with their
// index so uniqueness holds under case folding.
func RandomTeams(faker *gofakeit.Faker, n int) []string {
	teams := make([]string, 0, n)
	for i := 0; i < n; i++ {
		teams = append(teams, fmt.Sprintf("%s %s #%d", faker.City(), faker.Animal(), i))
	}
	return teams
}
