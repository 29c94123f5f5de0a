package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `교과목번호,분반,교과목명,학점,시간표,교수명,교과목구분
CS101,1,자료구조,3,월 09:00-10:30,김교수,전공
CS101,1,자료구조 중복,3,월 09:00-10:30,이교수,전공
CS102,1,휴강,3,,박교수,전공
CS103,,학점없음,,화 10:00-11:00,최교수,교양
`

func TestLoad_ParsesRowsDedupesAndDropsEmptySchedule(t *testing.T) {
	s, err := parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	lectures := s.Lectures()
	assert.Len(t, lectures, 2)

	cs101, ok := s.ByID("CS101-1")
	require.True(t, ok)
	assert.Equal(t, "자료구조", cs101.Name)
	assert.Equal(t, 3.0, cs101.Credit)
	assert.Len(t, cs101.ParsedTime, 1)

	cs103, ok := s.ByID("CS103-")
	require.True(t, ok)
	assert.Equal(t, 0.0, cs103.Credit)
}

func TestEmpty(t *testing.T) {
	s := Empty()
	assert.False(t, s.Loaded())
	assert.Empty(t, s.Lectures())
	_, ok := s.ByID("anything")
	assert.False(t, ok)
}

func TestLoad_MissingFileReturnsEmptyStore(t *testing.T) {
	s := Load("/nonexistent/path/does-not-exist.csv")
	assert.False(t, s.Loaded())
}
