package factors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegion(t *testing.T) {
	tests := []struct {
		name    string
		scope   string
		country string
		want    Region
		wantErr bool
	}{
		{name: "global", scope: "global", want: GlobalRegion()},
		{name: "global default empty scope", scope: "", want: GlobalRegion()},
		{name: "global uppercase", scope: "GLOBAL", want: GlobalRegion()},
		{name: "africa with country", scope: "africa", country: "KE", want: AfricaRegion(CountryKenya)},
		{name: "africa lowercase country", scope: "africa", country: "ng", want: AfricaRegion(CountryNigeria)},
		{name: "africa sub-saharan bucket", scope: "africa", country: "SSA", want: AfricaRegion(CountrySubSaharanAverage)},
		{name: "africa missing country", scope: "africa", wantErr: true},
		{name: "africa unknown country", scope: "africa", country: "FR", wantErr: true},
		{name: "global with country", scope: "global", country: "KE", wantErr: true},
		{name: "unknown scope", scope: "europe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRegion(tt.scope, tt.country)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegionString(t *testing.T) {
	assert.Equal(t, "global", GlobalRegion().String())
	assert.Equal(t, "africa/ZA", AfricaRegion(CountrySouthAfrica).String())
}

func TestParseCountry_CaseInsensitive(t *testing.T) {
	c, err := ParseCountry(" et ")
	require.NoError(t, err)
	assert.Equal(t, CountryEthiopia, c)
}
