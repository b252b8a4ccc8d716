package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/candidatos-info/diretorio/csvimport"
	"github.com/cheggaaa/pb"
)

func main() {
	file := flag.String("file", "", "candidates CSV file to validate")
	encoding := flag.String("encoding", csvimport.UTF8, "file encoding (utf-8, windows-1256, iso-8859-1)")
	showDropped := flag.Bool("dropped", false, "print the line numbers of dropped rows")
	flag.Parse()
	if *file == "" {
		log.Fatal("inform the candidates CSV file")
	}
	res, err := validate(*file, *encoding)
	if err != nil {
		log.Fatalf("failed to validate file [%s], error %v", *file, err)
	}
	fmt.Printf("columns [%d], lines [%d], accepted [%d], dropped [%d]\n", len(res.Header), res.Lines, res.Accepted(), len(res.Dropped))
	if *showDropped {
		for _, line := range res.Dropped {
			fmt.Println(line)
		}
	}
}

func validate(path, encoding string) (*csvimport.Result, error) {
	decode, err := csvimport.Decoder(encoding)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file [%s], error %v", path, err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file [%s], error %v", path, err)
	}
	bar := pb.Full.Start64(info.Size())
	defer bar.Finish()
	return csvimport.Parse(decode(bar.NewProxyReader(f)))
}
