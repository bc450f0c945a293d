package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/selectdb/design_patterns/pkg/filesystem"
	"github.com/selectdb/design_patterns/pkg/utils"
	"github.com/selectdb/design_patterns/pkg/version"
	"github.com/selectdb/design_patterns/pkg/xmetrics"
)

const demoName = "file_system"

var (
	showVersion   bool
	enableMetrics bool
)

func init() {
	flag.BoolVar(&showVersion, "version", false, "The program's version")
	flag.BoolVar(&enableMetrics, "metrics", true, "install the prometheus metrics sink")
}

func buildTree() (*filesystem.Directory, error) {
	root := filesystem.NewDirectory("root")
	documents := filesystem.NewDirectory("documents")
	pictures := filesystem.NewDirectory("pictures")

	tree := []struct {
		parent *filesystem.Directory
		child  filesystem.FileSystemComponent
	}{
		{root, documents},
		{root, pictures},
		{documents, filesystem.NewFile("document1.txt")},
		{documents, filesystem.NewFile("document2.txt")},
		{pictures, filesystem.NewFile("picture1.jpg")},
		{pictures, filesystem.NewFile("picture2.jpg")},
	}
	for _, node := range tree {
		if err := node.parent.Add(node.child); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func run(out io.Writer) error {
	root, err := buildTree()
	if err != nil {
		return err
	}
	log.Debugf("tree %s has %d components", root.Name(), filesystem.Count(root))

	return root.Print(out, 0)
}

func main() {
	flag.Parse()
	if showVersion {
		fmt.Println(version.GetVersion())
		os.Exit(0)
	}

	if err := utils.InitLog(); err != nil {
		fmt.Fprintf(os.Stderr, "init log failed: %+v\n", err)
		os.Exit(1)
	}

	if err := demo(); err != nil {
		log.Fatalf("print tree failed: %+v", err)
	}
}

// demo runs with the demo name bound for logging, metrics are logged on return
func demo() error {
	defer utils.SetDemoName(demoName)()

	log.Infof("%s start, version: %s", demoName, version.GetVersion())
	if enableMetrics {
		if err := xmetrics.InitGlobal(demoName); err != nil {
			return err
		}
		defer xmetrics.LogSnapshot(demoName)
	}

	return run(os.Stdout)
}
