package services

import (
	"sort"
	"strings"
	"sync"

	"clinic/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"golang.org/x/text/unicode/norm"
)

// ScoredPatient bệnh nhân kèm điểm phù hợp với từ khóa tìm kiếm
type ScoredPatient struct {
	Patient models.Patient `json:"patient"`
	Score   int            `json:"score"`
}

// Hàm chuẩn hóa chuỗi: bỏ dấu tiếng Việt và đưa về chữ thường
func NormalizeInput(input string) string {
	input = strings.TrimSpace(norm.NFC.String(input))
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0 // Nếu cả hai chuỗi đều rỗng, tương đồng là 100%
	}

	similarity := 1.0 - float64(distance)/maxLen
	return similarity
}

// Tạo danh sách tên đã chuẩn hóa cho closestmatch
func prepareNameList(patients []models.Patient) []string {
	uniqueValues := make(map[string]bool)
	for _, p := range patients {
		if p.Name != "" {
			uniqueValues[NormalizeInput(p.Name)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// Tính điểm phù hợp cho một bệnh nhân
func calculatePatientScore(query string, p models.Patient, cmName *closestmatch.ClosestMatch) int {
	score := 0

	// Trùng MRN chính xác là kết quả chắc chắn nhất
	if strings.EqualFold(p.MRN, strings.TrimSpace(query)) {
		score += 50
	}

	normalizedName := NormalizeInput(p.Name)
	if strings.Contains(normalizedName, query) {
		score += 25
	}
	if cmName.Closest(query) == normalizedName {
		score += 13
	}

	similarity := calculateSimilarity(query, normalizedName)
	if similarity > 0.7 {
		score += 10
	}
	if strings.Contains(p.PhoneNumber, strings.TrimSpace(query)) {
		score += 8
	}

	return score
}

// SearchPatients chấm điểm và xếp hạng bệnh nhân theo từ khóa
func SearchPatients(query string, patients []models.Patient) []ScoredPatient {
	normalizedQuery := NormalizeInput(query)
	cmName := createMatcher(prepareNameList(patients))

	scoreCh := make(chan ScoredPatient, len(patients))
	var wg sync.WaitGroup

	for _, p := range patients {
		wg.Add(1)
		go func(p models.Patient) {
			defer wg.Done()
			score := calculatePatientScore(normalizedQuery, p, cmName)
			if score > 0 {
				scoreCh <- ScoredPatient{Patient: p, Score: score}
			}
		}(p)
	}

	wg.Wait()
	close(scoreCh)

	var results []ScoredPatient
	for scored := range scoreCh {
		results = append(results, scored)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}
