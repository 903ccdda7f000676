package arwn

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "backyard", want: "backyard"},
		{name: "spaces", in: "Wind Speed", want: "wind_speed"},
		{name: "mixed punctuation", in: "Rain -- Since / Midnight", want: "rain_since_midnight"},
		{name: "upper case", in: "BAROMETER", want: "barometer"},
		{name: "digits", in: "Sensor 2b", want: "sensor_2b"},
		{name: "leading and trailing junk", in: "  garden  ", want: "garden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEntityID(t *testing.T) {
	if got := EntityID("arwn", "Wind Speed"); got != "sensor.arwn_wind_speed" {
		t.Errorf("EntityID() = %q, want %q", got, "sensor.arwn_wind_speed")
	}
	if got := EntityID("arwn", "backyard"); got != "sensor.arwn_backyard" {
		t.Errorf("EntityID() = %q, want %q", got, "sensor.arwn_backyard")
	}
}
