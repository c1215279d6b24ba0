// Command generate writes the sample employees files used in the README
// examples: employees.csv, employees.csv.gz and employees.parquet.
package main

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"

	"github.com/klauspost/compress/gzip"
	"github.com/parquet-go/parquet-go"
)

type Employee struct {
	ID     int64   `parquet:"id"`
	Name   string  `parquet:"name"`
	Age    int64   `parquet:"age"`
	Salary float64 `parquet:"salary"`
}

func main() {
	employees := []Employee{
		{ID: 1, Name: "Alice", Age: 30, Salary: 50000},
		{ID: 2, Name: "Bob", Age: 25, Salary: 45000},
		{ID: 3, Name: "Charlie", Age: 35, Salary: 55000},
		{ID: 4, Name: "Diana", Age: 40, Salary: 60000},
	}

	records := [][]string{{"id", "name", "age", "salary"}}
	for _, e := range employees {
		records = append(records, []string{
			strconv.FormatInt(e.ID, 10),
			e.Name,
			strconv.FormatInt(e.Age, 10),
			strconv.FormatFloat(e.Salary, 'f', -1, 64),
		})
	}

	writeCSV("employees.csv", records, false)
	writeCSV("employees.csv.gz", records, true)
	writeParquet("employees.parquet", employees)

	log.Printf("Generated sample files with %d employees", len(employees))
}

func writeCSV(name string, records [][]string, compress bool) {
	file, err := os.Create(name)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	if !compress {
		if err := csv.NewWriter(file).WriteAll(records); err != nil {
			log.Fatal(err)
		}
		return
	}

	gz := gzip.NewWriter(file)
	if err := csv.NewWriter(gz).WriteAll(records); err != nil {
		log.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		log.Fatal(err)
	}
}

func writeParquet(name string, employees []Employee) {
	file, err := os.Create(name)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Employee](file)
	if _, err := writer.Write(employees); err != nil {
		log.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		log.Fatal(err)
	}
}
