package refdata

import (
	"context"

	"github.com/MarcGrol/shopcheckout/lib/myerrors"
	"github.com/MarcGrol/shopcheckout/lib/mylog"
	"github.com/MarcGrol/shopcheckout/lib/mystore"
)

func (s *Service) GetCountries(c context.Context) ([]Country, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Fetch all countries")

	countries, err := s.countryStore.Query(c, nil, "Name")
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}

	return countries, nil
}

func (s *Service) GetStates(c context.Context, countryCode string) ([]State, error) {
	s.logger.Log(c, countryCode, mylog.SeverityInfo, "Fetch states of country %s", countryCode)

	if countryCode == "" {
		return nil, myerrors.NewInvalidInputErrorf("missing country code")
	}

	states, err := s.stateStore.Query(c, []mystore.Filter{{Field: "CountryCode", Compare: "=", Value: countryCode}}, "Name")
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}

	return states, nil
}

// GetCreditCardMonths returns the months from startMonth up to and including december
func (s *Service) GetCreditCardMonths(c context.Context, startMonth int) ([]int, error) {
	if startMonth < 1 || startMonth > 12 {
		return nil, myerrors.NewInvalidInputErrorf("start month %d must be within 1..12", startMonth)
	}

	months := make([]int, 0, 13-startMonth)
	for month := startMonth; month <= 12; month++ {
		months = append(months, month)
	}

	return months, nil
}

func (s *Service) GetCreditCardYears(c context.Context) ([]int, error) {
	startYear := s.nower.Now().Year()

	years := make([]int, 0, yearsAhead+1)
	for year := startYear; year <= startYear+yearsAhead; year++ {
		years = append(years, year)
	}

	return years, nil
}
