package arwn

import "github.com/saaga0h/arwn-bridge/pkg/mqtt"

// Unit labels fixed by the ARWN wire protocol.
const (
	UnitFahrenheit = "°F"
	UnitCelsius    = "°C"
	UnitDegree     = "°"
	UnitInches     = "in"
)

// Material design icons matching the sensor kind.
const (
	iconMoisture    = "mdi:water-percent"
	iconWater       = "mdi:water"
	iconPressure    = "mdi:thermometer-lines"
	iconSpeedometer = "mdi:speedometer"
	iconCompass     = "mdi:compass"
)

// Descriptor describes one sensor implied by a single topic + payload.
// It is transient: the registry turns descriptors into live sensors.
type Descriptor struct {
	Name     string
	StateKey string
	Unit     string
	Icon     string
	Topic    string
}

// Classify maps a topic and its decoded payload onto the sensors it
// describes. One message can imply several sensors (wind carries speed,
// gust and direction), exactly one (temperature), or none at all.
//
// Topics outside the known domains and topics missing a required name
// segment yield an empty result; Classify never fails.
func Classify(topic string, payload map[string]any) []Descriptor {
	parts := mqtt.Split(topic)
	if len(parts) < 2 {
		return nil
	}

	unit, _ := payload["units"].(string)
	domain := parts[1]

	switch domain {
	case "temperature":
		if len(parts) < 3 {
			return nil
		}
		if unit == "F" {
			unit = UnitFahrenheit
		} else {
			unit = UnitCelsius
		}
		return []Descriptor{
			{Name: parts[2], StateKey: "temp", Unit: unit, Topic: topic},
		}

	case "moisture":
		if len(parts) < 3 {
			return nil
		}
		return []Descriptor{
			{Name: parts[2] + " Moisture", StateKey: "moisture", Unit: unit, Icon: iconMoisture, Topic: topic},
		}

	case "rain":
		if len(parts) >= 3 && parts[2] == "today" {
			return []Descriptor{
				{Name: "Rain Since Midnight", StateKey: "since_midnight", Unit: UnitInches, Icon: iconWater, Topic: topic},
			}
		}
		return []Descriptor{
			{Name: "Total Rainfall", StateKey: "total", Unit: unit, Icon: iconWater, Topic: topic},
			{Name: "Rainfall Rate", StateKey: "rate", Unit: unit, Icon: iconWater, Topic: topic},
		}

	case "barometer":
		return []Descriptor{
			{Name: "Barometer", StateKey: "pressure", Unit: unit, Icon: iconPressure, Topic: topic},
		}

	case "wind":
		return []Descriptor{
			{Name: "Wind Speed", StateKey: "speed", Unit: unit, Icon: iconSpeedometer, Topic: topic},
			{Name: "Wind Gust", StateKey: "gust", Unit: unit, Icon: iconSpeedometer, Topic: topic},
			{Name: "Wind Direction", StateKey: "direction", Unit: UnitDegree, Icon: iconCompass, Topic: topic},
		}
	}

	return nil
}
