package entity

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderRecordLenientDecode(t *testing.T) {
	payload := `[
		{"id":"111","name":"Dr. Asha Rao","specialities":[{"name":"Dentist"}],"fees":"₹ 500","experience":"13 Years of experience","video_consult":true,"in_clinic":false,
		 "clinic":{"name":"Smile Care","address":{"locality":"Indiranagar","city":"Bengaluru","address_line1":"12 MG Road"}}},
		{"id":112,"name":"Dr. Ben","fees":700,"experience":{"years":3},"video_consult":"true","in_clinic":1,"clinic":null},
		{"id":"abc","name":null,"specialities":null,"fees":null,"video_consult":"yes"}
	]`

	var records []ProviderRecord
	require.NoError(t, json.Unmarshal([]byte(payload), &records))
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, FlexInt(111), first.ID)
	assert.Equal(t, "Dr. Asha Rao", first.Name.String())
	assert.Equal(t, "₹ 500", first.Fees.String())
	assert.Equal(t, "13 Years of experience", first.Experience.String())
	assert.True(t, bool(first.VideoConsult))
	assert.False(t, bool(first.InClinic))
	require.NotNil(t, first.Clinic)
	require.NotNil(t, first.Clinic.Address)
	assert.Equal(t, "Indiranagar", first.Clinic.Address.Locality.String())

	second := records[1]
	assert.Equal(t, FlexInt(112), second.ID)
	assert.Equal(t, "700", second.Fees.String())
	assert.Equal(t, "", second.Experience.String())
	assert.True(t, bool(second.VideoConsult))
	assert.True(t, bool(second.InClinic))
	assert.Nil(t, second.Clinic)

	third := records[2]
	assert.Equal(t, FlexInt(0), third.ID)
	assert.Equal(t, "", third.Name.String())
	assert.Empty(t, third.Specialities)
	assert.False(t, bool(third.VideoConsult))
}

func TestProviderRecordRejectsNonArrayDocument(t *testing.T) {
	var records []ProviderRecord
	assert.Error(t, json.Unmarshal([]byte(`{"doctors":[]}`), &records))
}

func TestFetchError(t *testing.T) {
	httpErr := &FetchError{StatusCode: 503, Err: errors.New("unavailable")}
	assert.Equal(t, "fetch doctors: API error: 503", httpErr.Error())

	cause := errors.New("connection refused")
	transportErr := &FetchError{Err: cause}
	assert.Equal(t, "fetch doctors: connection refused", transportErr.Error())
	assert.ErrorIs(t, transportErr, cause)
}
