// Command gendata generates a sample lecture catalog CSV for local
// development and load testing, adapting the same weighted-random
// generation idiom the academic module used for its SQL fixtures.
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
)

var subjectNames = []string{
	"자료구조", "알고리즘", "운영체제", "컴퓨터네트워크", "데이터베이스",
	"소프트웨어공학", "인공지능", "기계학습", "컴퓨터비전", "자연어처리",
	"이산수학", "선형대수", "확률과통계", "미적분학", "물리학개론",
	"일반화학", "경영학원론", "마케팅원리", "회계원리", "미시경제학",
	"거시경제학", "심리학개론", "사회학개론", "철학의이해", "한국사",
}

var professors = []string{
	"김민준", "이서연", "박도윤", "최지우", "정하은",
	"강지호", "조서윤", "윤주원", "장예은", "임도현",
}

var categories = []string{"전공필수", "전공선택", "교양필수", "교양선택"}

var weekdays = []string{"월", "화", "수", "목", "금"}

func randomChoice(slice []string) string {
	return slice[rand.Intn(len(slice))]
}

// weightedCredit mirrors the 1/2/3/4-credit distribution (10/40/35/15%)
// the academic module's dummy-data generator used for course SKS values.
func weightedCredit() int {
	weights := []int{10, 40, 35, 15}
	cumulative := 0
	randVal := rand.Intn(100)
	for i, w := range weights {
		cumulative += w
		if randVal < cumulative {
			return i + 1
		}
	}
	return 3
}

// timeRoom builds a schedule string in the range-form the timeparse
// package understands, e.g. "월 09:00-10:40" for a 2-credit lecture.
func timeRoom(credit int) string {
	day := randomChoice(weekdays)
	startHour := 9 + rand.Intn(8) // 09:00-16:xx
	durationMinutes := credit * 50
	startMin := startHour * 60
	endMin := startMin + durationMinutes
	return fmt.Sprintf("%s %02d:%02d-%02d:%02d", day, startMin/60, startMin%60, endMin/60, endMin%60)
}

func main() {
	count := 60
	outPath := "./data/lectures.csv"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	file, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating %s: %v\n", outPath, err)
		os.Exit(1)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	header := []string{"교과목번호", "분반", "교과목명", "학점", "시간표", "교수명", "교과목구분"}
	if err := w.Write(header); err != nil {
		fmt.Fprintf(os.Stderr, "writing header: %v\n", err)
		os.Exit(1)
	}

	for i := 1; i <= count; i++ {
		credit := weightedCredit()
		number := fmt.Sprintf("CS%03d", 100+i)
		classNum := fmt.Sprintf("%02d", 1+rand.Intn(3))
		row := []string{
			number,
			classNum,
			randomChoice(subjectNames),
			fmt.Sprintf("%.1f", float64(credit)),
			timeRoom(credit),
			randomChoice(professors),
			randomChoice(categories),
		}
		if err := w.Write(row); err != nil {
			fmt.Fprintf(os.Stderr, "writing row %d: %v\n", i, err)
			os.Exit(1)
		}
	}

	fmt.Printf("wrote %d lecture rows to %s\n", count, outPath)
}
