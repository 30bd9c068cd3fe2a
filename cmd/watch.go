package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/deploymenttheory/go-project-tracker/internal/config"
	"github.com/deploymenttheory/go-project-tracker/internal/logger"
	"github.com/deploymenttheory/go-project-tracker/pkg/tracker"
)

var (
	watchFile string
	watchKind string

	// Editors fire bursts of events per save; collapse them
	watchDebounce = 500 * time.Millisecond
)

// watchCmd re-parses a status document whenever it changes on disk
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a status document and re-parse it on every change",
	Long: `Watches a status document's directory and re-parses the document on
every write. Parse results and failures are logged as they happen, so a
malformed save shows up immediately. Stop with Ctrl-C.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchFile, "file", "f", "", "status document to watch (default is the configured workspace file)")
	watchCmd.Flags().StringVar(&watchKind, "kind", "workflow", "document kind: workflow or sprint")
}

func runWatch(cmd *cobra.Command, args []string) error {
	var path string
	var err error
	switch watchKind {
	case "workflow":
		path, err = resolveDocumentPath(watchFile, config.StatusFilePath)
	case "sprint":
		path, err = resolveDocumentPath(watchFile, config.SprintFilePath)
	default:
		return fmt.Errorf("unknown document kind %q (want workflow or sprint)", watchKind)
	}
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory rather than the file itself: editors replace
	// files on save, which drops a direct file watch.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("watching %s (Ctrl-C to stop)\n", path)

	// Every log line from this loop concerns the same document
	watchLog := logger.WithField("file", path)
	reparseDocument(watchLog, path)

	var lastReparse time.Time
	for {
		select {
		case <-ctx.Done():
			fmt.Println("stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if time.Since(lastReparse) < watchDebounce {
				continue
			}
			lastReparse = time.Now()
			reparseDocument(watchLog, path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			watchLog.Errorw("Watcher error", "error", err.Error())
		}
	}
}

// reparseDocument parses the document and logs what it holds now.
func reparseDocument(log *zap.SugaredLogger, path string) {
	content, err := loadDocument(path)
	if err != nil {
		log.Errorw("Failed to read document", "error", err.Error())
		return
	}

	switch watchKind {
	case "sprint":
		data, err := tracker.ParseSprintStatus(content)
		if err != nil {
			log.Errorw("Sprint document no longer parses", "error", err.Error())
			return
		}
		stories := 0
		for _, epic := range data.Epics {
			stories += len(epic.Stories)
		}
		log.Infow("Sprint document parsed",
			"epics", len(data.Epics),
			"stories", stories,
		)
	default:
		data, err := tracker.ParseWorkflowStatus(content)
		if err != nil {
			log.Errorw("Workflow document no longer parses", "error", err.Error())
			return
		}
		log.Infow("Workflow document parsed", "items", len(data.Items))
	}
}
