//go:build ignore

// verify_excel checks a generated workbook: both sheets are present, the raw
// sheet holds no interface matched by the exclusion pattern, and the summary
// total matches the raw row count.
//
//	go run scripts/verify_excel.go output/<timestamp>-devices_interface_report.xlsx
package main

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"

	"github.com/xuri/excelize/v2"
)

const excludePattern = `(?i)^(ae|bond|dock|ifb|lo|lxc|mgm|npu\d+_vl|oob|po|ssl|tep|tu|ucse|unb|veth|virtu|vl|vxl|wan|\/Common\/)|\.\d+`

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: go run scripts/verify_excel.go <report.xlsx> [pattern]")
	}
	filename := os.Args[1]
	pattern := excludePattern
	if len(os.Args) > 2 {
		pattern = os.Args[2]
	}
	re := regexp.MustCompile(pattern)

	f, err := excelize.OpenFile(filename)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	fmt.Printf("=== EXCEL CHECK: %s ===\n", filename)
	fmt.Printf("Sheets: %v\n\n", f.GetSheetList())

	failed := false

	// Raw sheet: no excluded interface
	raw, err := f.GetRows("intf_raw_data")
	if err != nil {
		log.Fatal(err)
	}
	intCol := -1
	if len(raw) > 0 {
		for i, h := range raw[0] {
			if h == "intName" {
				intCol = i
			}
		}
	}
	if intCol < 0 {
		fmt.Println("❌ intName column not found in intf_raw_data")
		os.Exit(1)
	}

	for i, row := range raw[1:] {
		if len(row) > intCol && re.MatchString(row[intCol]) {
			fmt.Printf("❌ EXCLUDED INTERFACE at row %d: '%s'\n", i+2, row[intCol])
			failed = true
		}
	}
	fmt.Printf("Raw rows: %d\n", len(raw)-1)

	// Report sheet: total matches the raw rows
	rows, err := f.GetRows("report")
	if err != nil {
		log.Fatal(err)
	}
	for _, row := range rows {
		if len(row) > 1 && row[0] == "Total" {
			total, _ := strconv.Atoi(row[1])
			fmt.Printf("Summary total: %d\n", total)
			if total != len(raw)-1 {
				fmt.Printf("❌ Summary total %d does not match %d raw rows\n", total, len(raw)-1)
				failed = true
			}
		}
	}

	fmt.Println()
	if failed {
		fmt.Println("❌ Workbook check FAILED")
		os.Exit(1)
	}
	fmt.Println("✅ Workbook check passed")
}
