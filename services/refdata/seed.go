package refdata

import (
	"context"
	"fmt"

	"github.com/MarcGrol/shopcheckout/lib/mylog"
)

var countries = []Country{
	{ID: 1, Code: "BR", Name: "Brazil"},
	{ID: 2, Code: "CA", Name: "Canada"},
	{ID: 3, Code: "DE", Name: "Germany"},
	{ID: 4, Code: "IN", Name: "India"},
	{ID: 5, Code: "TR", Name: "Turkey"},
	{ID: 6, Code: "US", Name: "United States"},
}

var statesPerCountry = map[string][]string{
	"BR": {"Acre", "Bahia", "Minas Gerais", "Paraná", "Rio de Janeiro", "Rio Grande do Sul", "São Paulo"},
	"CA": {"Alberta", "British Columbia", "Manitoba", "New Brunswick", "Nova Scotia", "Ontario", "Quebec", "Saskatchewan"},
	"DE": {"Baden-Württemberg", "Bayern", "Berlin", "Brandenburg", "Bremen", "Hamburg", "Hessen", "Niedersachsen", "Nordrhein-Westfalen", "Sachsen"},
	"IN": {"Andhra Pradesh", "Delhi", "Goa", "Gujarat", "Karnataka", "Kerala", "Maharashtra", "Tamil Nadu", "West Bengal"},
	"TR": {"Adana", "Ankara", "Antalya", "Bursa", "Istanbul", "Izmir", "Konya"},
	"US": {"Alabama", "Alaska", "Arizona", "California", "Colorado", "Florida", "Georgia", "New York", "Texas", "Washington"},
}

// Seed stores the reference data; running it again overwrites the same keys
func (s *Service) Seed(c context.Context) error {
	err := s.countryStore.RunInTransaction(c, func(c context.Context) error {
		for _, country := range countries {
			err := s.countryStore.Put(c, country.Code, country)
			if err != nil {
				return fmt.Errorf("error storing country %s: %s", country.Code, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	err = s.stateStore.RunInTransaction(c, func(c context.Context) error {
		id := 1
		for _, country := range countries {
			for _, name := range statesPerCountry[country.Code] {
				state := State{ID: id, Name: name, CountryCode: country.Code}
				err := s.stateStore.Put(c, state.key(), state)
				if err != nil {
					return fmt.Errorf("error storing state %s: %s", state.key(), err)
				}
				id++
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Log(c, "", mylog.SeverityInfo, "Seeded %d countries", len(countries))

	return nil
}
