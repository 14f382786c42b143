package ghostintegration

import (
	"github.com/Masterminds/semver/v3"
)

// memberUpdatedSample builds the preview payload for the member updated
// trigger. The API cannot report what changed in a past edit, so a sample
// envelope stands in for live data, with fields included only when the
// connected site's version actually supports them.
func memberUpdatedSample(version string) map[string]any {
	current := map[string]any{
		"id":         "5a01d3ecc8d50d0e606a7e7c",
		"name":       "New Member Name",
		"email":      "sample@example.com",
		"note":       "Updated sample member record.",
		"created_at": "2019-10-13T18:12:00.000Z",
		"updated_at": "2019-10-31T14:58:00.000Z",
	}
	previous := map[string]any{
		"name":       "Old Member Name",
		"note":       "Just a sample member record.",
		"updated_at": "2019-10-13T18:12:00.000Z",
	}

	if v, err := semver.NewVersion(version); err == nil {
		if !v.LessThan(semver.MustParse("3.4.0")) {
			current["comped"] = true
		}

		if !v.LessThan(semver.MustParse("3.6.0")) {
			current["labels"] = []map[string]any{{
				"id":         "5f212d395422021ebc4b7043",
				"name":       "New label",
				"slug":       "new-label",
				"created_at": "2020-10-13T18:12:00.000Z",
				"updated_at": "2020-10-13T18:12:00.000Z",
			}}
			previous["labels"] = []map[string]any{}
		}

		if !v.LessThan(semver.MustParse("3.8.0")) {
			current["avatar_image"] = "https://www.gravatar.com/avatar/1cbf9257d69d61819743dda9d4b0b06d?s=180&d=blank"
			current["geolocation"] = map[string]any{
				"city":         "Kidderminster",
				"region":       "England",
				"country":      "United Kingdom",
				"country_code": "GB",
				"timezone":     "Europe/London",
				"latitude":     "52.375",
				"longitude":    "-2.2417",
				"ip":           "188.39.113.90",
			}
		}
	}

	return map[string]any{
		"current":  current,
		"previous": previous,
	}
}
