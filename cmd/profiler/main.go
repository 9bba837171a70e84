package main

import (
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof" // Import for side effects: registers pprof handlers
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/kv-skiplist/skiplist"
)

func main() {
	// เปิด pprof endpoint ผ่าน HTTP server
	// ซึ่งจะทำงานใน goroutine แยกต่างหาก
	go func() {
		fmt.Println("Starting pprof server on http://localhost:6060/debug/pprof/")
		// http.ListenAndServe จะ block การทำงาน, ถ้า return แสดงว่ามี error
		if err := http.ListenAndServe("localhost:6060", nil); err != nil {
			log.Fatalf("pprof server failed: %v", err)
		}
	}()

	// รอให้ server เริ่มทำงานสักครู่
	time.Sleep(100 * time.Millisecond)

	// อ่านค่า numItems และ chunkSize จาก command-line
	numItems, chunkSize := parseArgs()

	fmt.Println("Starting skiplist insertion workload...")
	fmt.Printf(" - Items to insert: %d\n", numItems)
	fmt.Printf(" - Initial chunk size: %d\n", chunkSize)

	sl := createSkipList(numItems, chunkSize)

	// เพิ่มข้อมูลจำนวนมากเพื่อสร้างภาระงานให้ CPU
	for i := 0; i < numItems; i++ {
		if err := sl.Put(i, i); err != nil {
			log.Fatalf("put failed at i=%d: %v", i, err)
		}
	}

	fmt.Printf("Finished inserting %d items. List length: %d\n", numItems, sl.Len())
	fmt.Println("Program is keeping alive for profiling. Press Ctrl+C to exit.")

	// ทำให้โปรแกรมทำงานค้างไว้เพื่อให้เราสามารถเชื่อมต่อ pprof server ได้
	// การ select จาก channel ที่ไม่มีวันได้รับข้อมูลเป็นวิธีที่นิยมใช้
	select {}
}

// parseArgs แยกวิเคราะห์ arguments จาก command-line
// Usage: go run ./cmd/profiler [chunk_size] [num_items]
// Example: go run ./cmd/profiler 65536 5000000
func parseArgs() (numItems int, chunkSize int) {
	// Default values
	chunkSize = 128
	numItems = 2_000_000

	if len(os.Args) > 1 {
		if n, err := strconv.Atoi(os.Args[1]); err == nil {
			chunkSize = n
		}
	}
	if len(os.Args) > 2 {
		if n, err := strconv.Atoi(os.Args[2]); err == nil {
			numItems = n
		}
	}
	return numItems, chunkSize
}

// createSkipList สร้าง skiplist พร้อม node cache ที่ presize ไว้ล่วงหน้า
func createSkipList(numItems int, chunkSize int) *skiplist.SkipList[int, int] {
	fmt.Printf("Using node cache with initial chunk size %d\n", chunkSize)
	runtime.GC() // สั่งให้ GC ทำงานเพื่อดู memory ก่อนเริ่ม
	return skiplist.New[int, int](skiplist.SetMode, skiplist.WithInitialChunkSize[int, int](chunkSize))
}
