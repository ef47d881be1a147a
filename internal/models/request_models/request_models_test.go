package request_models

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripplanner/pkg/utils"
)

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var verr *utils.ValidationError
	require.True(t, errors.As(err, &verr))
	out := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		out = append(out, f.Field)
	}
	return out
}

func TestCreateTripRequestToInput(t *testing.T) {
	in, err := CreateTripRequest{
		Name:      "Summer",
		StartDate: "2024-06-01",
		EndDate:   "2024-06-10",
		Currency:  "eur",
		Tags:      []string{" Beach ", "beach", "", "Food"},
	}.ToInput()
	require.NoError(t, err)
	assert.Equal(t, "EUR", *in.Currency)
	assert.Equal(t, []string{"beach", "food"}, in.Tags)
	assert.Nil(t, in.Status)
	assert.Equal(t, "2024-06-10", utils.DateKey(*in.EndDate))

	_, err = CreateTripRequest{Name: "x", StartDate: "tomorrow", EndDate: "later"}.ToInput()
	assert.Equal(t, []string{"startDate", "endDate"}, fieldNames(t, err))
}

func TestUpdateTripRequestKeepsUnsetFields(t *testing.T) {
	name := "New"
	in, err := UpdateTripRequest{Name: &name}.ToInput()
	require.NoError(t, err)
	assert.Equal(t, "New", *in.Name)
	assert.Nil(t, in.StartDate)
	assert.Nil(t, in.Currency)
	assert.Nil(t, in.Tags)
}

func TestStopRequestToInput(t *testing.T) {
	city := uuid.New()
	in, err := StopRequest{CityID: city.String(), ArrivalDate: "2024-06-01", DepartureDate: "2024-06-03"}.ToInput()
	require.NoError(t, err)
	assert.Equal(t, city, in.CityID)
	assert.Equal(t, "2024-06-03", utils.DateKey(in.DepartureDate))

	_, err = StopRequest{CityID: "nope", ArrivalDate: "2024-06-01", DepartureDate: "x"}.ToInput()
	assert.Equal(t, []string{"cityId", "departureDate"}, fieldNames(t, err))
}

func TestTripActivityRequestToInput(t *testing.T) {
	in, err := AddTripActivityRequest{
		ActivityID: uuid.NewString(),
		StartTime:  "2024-06-01T09:00:00Z",
		EndTime:    "2024-06-01T10:00:00Z",
	}.ToInput()
	require.NoError(t, err)
	assert.True(t, in.EndTime.After(in.StartTime))

	_, err = UpdateTripActivityRequest{StartTime: "2024-06-01", EndTime: "2024-06-01T10:00:00Z"}.ToInput()
	assert.Equal(t, []string{"startTime"}, fieldNames(t, err))
}

func TestReorderStopsRequestToInput(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	ids, err := ReorderStopsRequest{StopIDs: []string{b.String(), a.String()}}.ToInput()
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{b, a}, ids)

	_, err = ReorderStopsRequest{StopIDs: []string{a.String(), a.String()}}.ToInput()
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestSearchQueryCostRange(t *testing.T) {
	lo, hi := 10.0, 5.0
	assert.ErrorIs(t, CitySearchQuery{MinCost: &lo, MaxCost: &hi}.Validate(), utils.ErrValidation)
	assert.NoError(t, ActivitySearchQuery{MinCost: &hi, MaxCost: &lo}.Validate())
}
