package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicIDFromURL(t *testing.T) {
	testCases := []struct {
		URL      string
		Expected string
	}{
		{URL: "https://res.cloudinary.com/demo/image/upload/v1712345678/01HV3K8ZP.jpg", Expected: "01HV3K8ZP"},
		{URL: "http://res.cloudinary.com/demo/image/upload/v1/abc.def.png", Expected: "abc.def"},
		{URL: "https://cdn.example.com/img/banner?x=1", Expected: "banner"},
		{URL: "plainid", Expected: "plainid"},
		{URL: "", Expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.URL, func(t *testing.T) {
			assert.Equal(t, tc.Expected, PublicIDFromURL(tc.URL))
		})
	}
}
