package domain

// City represents a city a shift belongs to
// The shift provider identifies cities by area name only, so ID and Name carry
// the same value; the split is kept for the day the provider grows real ids
type City struct {
	ID   string
	Name string
}

// CityFromArea строит справочную запись города из названия области смены
func CityFromArea(area string) City {
	return City{ID: area, Name: area}
}
