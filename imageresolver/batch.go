package imageresolver

import (
	"context"

	"birthday-twins/models"

	"github.com/sourcegraph/conc/pool"
)

// ResolveAll 은 인물마다 Resolve 를 병렬로 실행하고, 모두 끝난 뒤에 입력 순서대로 결과를 돌려준다.
// 한 인물의 실패는 다른 인물에 영향을 주지 않는다. maxConcurrency 가 0 이하면 인원 수만큼 동시에 실행한다.
func (r *Resolver) ResolveAll(ctx context.Context, people []models.Celebrity, maxConcurrency int) ([]models.Celebrity, []Report) {
	enriched := make([]models.Celebrity, len(people))
	reports := make([]Report, len(people))
	if len(people) == 0 {
		return enriched, reports
	}

	if maxConcurrency <= 0 || maxConcurrency > len(people) {
		maxConcurrency = len(people)
	}
	p := pool.New().WithMaxGoroutines(maxConcurrency)

	// 각 goroutine 은 자기 인덱스에만 쓰므로 잠금이 필요 없다.
	for idx, person := range people {
		p.Go(func() {
			report := r.Resolve(ctx, person.Name)
			reports[idx] = report
			enriched[idx] = person.WithImage(report.URL)
		})
	}
	p.Wait()

	return enriched, reports
}
