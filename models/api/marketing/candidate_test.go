package marketingapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCandidateDataValidate(t *testing.T) {
	t.Run(`корректный запрос`, func(t *testing.T) {
		data := CandidateData{Name: "Петр Петров", Email: "petrov@example.com"}
		require.Nil(t, data.Validate())
	})

	t.Run(`без имени`, func(t *testing.T) {
		data := CandidateData{Email: "petrov@example.com"}
		require.NotNil(t, data.Validate())
	})

	t.Run(`почта в неправильном формате`, func(t *testing.T) {
		data := CandidateData{Name: "Петр Петров", Email: "не почта"}
		require.NotNil(t, data.Validate())
	})

	t.Run(`отрицательные счетчики`, func(t *testing.T) {
		data := CandidateData{Name: "Петр Петров", Email: "petrov@example.com", Submissions: -1}
		require.NotNil(t, data.Validate())

		data = CandidateData{Name: "Петр Петров", Email: "petrov@example.com", Interviews: -1}
		require.NotNil(t, data.Validate())
	})
}
