package guard

import (
	"os"
	"sync"
)

var once sync.Once

func init() {
	once.Do(func() {
		if os.Getenv("TWITTER_TEST_MODE") == "" {
			_ = os.Setenv("TWITTER_TEST_MODE", "1")
		}
	})
}
