// Package cleanup collects teardown jobs (connection pools, open
// files) so main can release everything in one place on shutdown.
package cleanup

import (
	"log"
	"sync"
)

type Job struct {
	Name string
	F    func() error
}

var (
	mu   sync.Mutex
	jobs []*Job
)

func Register(j *Job) {
	mu.Lock()
	defer mu.Unlock()
	jobs = append(jobs, j)
}

// CleanUp runs jobs in reverse registration order, so dependents go
// down before what they depend on. Errors are logged, not returned:
// shutdown keeps going regardless.
func CleanUp() {
	mu.Lock()
	defer mu.Unlock()
	for i := len(jobs) - 1; i >= 0; i-- {
		j := jobs[i]
		log.Printf("Cleanup job %s started...", j.Name)
		if err := j.F(); err != nil {
			log.Printf("Job finished with error: %v", err)
		} else {
			log.Println("Cleaned")
		}
	}
	jobs = nil
}
