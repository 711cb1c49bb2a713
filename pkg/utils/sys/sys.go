package sys

import (
	"apsearch/pkg/utils/units"
	"log"
	"os"
	"runtime"
)

func CreateDir(dirname string) error {
	return os.MkdirAll(dirname, 0755)
}

func CreateFile(filename string) (*os.File, error) {
	return os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
}

func LogMemoryUsage() {
	const MB = units.MB
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	log.Printf("Memory used: %.2f MB. StackSys: %.2f MB. HeapInUse: %.2f MB.\n",
		float64(memStats.Alloc)/MB, float64(memStats.StackSys)/MB, float64(memStats.HeapInuse)/MB)
}
