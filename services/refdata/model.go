package refdata

type Country struct {
	ID   int
	Code string
	Name string
}

type State struct {
	ID          int
	Name        string
	CountryCode string
}

func (s State) key() string {
	return stateKey(s.CountryCode, s.Name)
}

func stateKey(countryCode, name string) string {
	return countryCode + "/" + name
}
