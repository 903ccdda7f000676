package mqtt

import "strings"

// Topic helpers for the ARWN namespace.
//
// ARWN stations publish under a single root:
//
//	{root}/{domain}              e.g. arwn/wind, arwn/barometer
//	{root}/{domain}/{name...}    e.g. arwn/temperature/backyard, arwn/rain/today

// Wildcard returns the subscription pattern covering the whole namespace
// under the given root, e.g. "arwn/#".
func Wildcard(root string) string {
	return root + "/#"
}

// Join builds a topic from a root and path segments.
func Join(root string, segments ...string) string {
	if len(segments) == 0 {
		return root
	}
	return root + "/" + strings.Join(segments, "/")
}

// Split breaks a topic into its segments.
func Split(topic string) []string {
	return strings.Split(topic, "/")
}
