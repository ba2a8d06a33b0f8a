package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/robfig/cron"

	"FlightRadarAnalytics/src/analyzer"
	"FlightRadarAnalytics/src/config"
	"FlightRadarAnalytics/src/datapush"
	"FlightRadarAnalytics/src/datasource/email"
	"FlightRadarAnalytics/src/datasource/file"
	"FlightRadarAnalytics/src/processor"
	"FlightRadarAnalytics/src/storage"
)

func main() {
	cfg := config.Load(filepath.Join("config", "config.json"))

	logger, err := storage.NewLogger(cfg.LogName)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Close()

	if cfg.Watch {
		runWatch(cfg, logger)
		return
	}

	source := filepath.Join(cfg.DataDir, cfg.DataSource)
	if err := runOnce(source, cfg, logger); err != nil {
		logger.Error(err.Error())
		log.Fatal(err)
	}
}

// runOnce executes the whole pipeline for one export: read, transform,
// persist side artifacts, analyze, report. Only a missing or unreadable
// source aborts; everything downstream degrades per field.
func runOnce(source string, cfg *config.Config, logger *storage.Logger) error {
	start := time.Now()
	logger.Info("loading data from: " + source)

	table, err := file.ReadXLSX(source, cfg.SheetName)
	if err != nil {
		return err
	}

	records, frame := processor.Transform(table, cfg.AnalysisParams.DelayThreshold, logger)
	logger.Info(fmt.Sprintf("ingested %d flight records", len(records)))

	if err := file.WriteProcessedCSV(records, file.ProcessedPath(source)); err != nil {
		logger.Error(err.Error())
	}
	if err := file.WriteNormalizedWorkbook(frame, file.NormalizedPath(source)); err != nil {
		logger.Error(err.Error())
	}

	result := analyzer.Run(records, analyzer.Params{
		DelayThreshold:           cfg.AnalysisParams.DelayThreshold,
		CascadeFactor:            cfg.AnalysisParams.CascadeFactor,
		SimulationDelayReduction: cfg.AnalysisParams.SimulationDelayReduction,
	})

	if err := os.MkdirAll(cfg.ReportsDir, 0755); err != nil {
		logger.Error(err.Error())
	}
	reportPath := file.AnalysisPath(source, cfg.ReportsDir)
	if err := result.WriteJSON(reportPath); err != nil {
		logger.Error(err.Error())
	} else {
		logger.Info("analysis report written to: " + reportPath)
	}
	if err := file.WriteReportWorkbook(result, file.ReportWorkbookPath(source, cfg.ReportsDir)); err != nil {
		logger.Error(err.Error())
	}

	printSummary(result)

	if cfg.WebhookURL != "" {
		if err := datapush.Push(cfg.WebhookURL, result); err != nil {
			logger.Error(err.Error())
		}
	}
	if cfg.SendEmail.Server != "" {
		if err := email.SendReport(cfg, summaryText(result), reportPath); err != nil {
			logger.Error(err.Error())
		}
	}

	logger.Info(fmt.Sprintf("pipeline finished in %v", time.Since(start)))
	logger.CheckRotate(cfg.LogMaxSize)
	return nil
}

// runWatch keeps the process alive: the data directory is watched for
// fresh exports and, when a mailbox is configured, polled mail
// attachments land in the same directory and trigger the monitor.
func runWatch(cfg *config.Config, logger *storage.Logger) {
	go startWebUI(logger)

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		log.Fatal("Failed to create data dir:", err)
	}
	monitor, err := file.NewMonitor(cfg.DataDir, "")
	if err != nil {
		log.Fatal("Failed to create file monitor:", err)
	}
	defer monitor.Close()

	go func() {
		err := monitor.Watch(func(path string) {
			if err := runOnce(path, cfg, logger); err != nil {
				logger.Error(err.Error())
			}
		})
		if err != nil {
			logger.Error("file monitor: " + err.Error())
		}
	}()

	c := cron.New()
	if cfg.Email.Server != "" {
		mailClient := email.NewClient(cfg.Email.Server, cfg.Email.Username, cfg.Email.Password)
		handler := email.NewXLSXAttachmentHandler(cfg.DataDir)
		spec := fmt.Sprintf("@every %s", time.Duration(cfg.Email.CheckInterval))

		if err := c.AddFunc(spec, func() {
			msg, err := email.CheckMailbox(mailClient, cfg.Email.TargetSubject, logger)
			if err != nil {
				logger.Error(err.Error())
				return
			}
			if _, err := handler.Handle(msg, logger); err != nil {
				logger.Error(err.Error())
			}
		}); err != nil {
			log.Fatal("Failed to schedule mailbox check:", err)
		}
		c.Start()
		defer c.Stop()
		logger.Info(fmt.Sprintf("mailbox polling scheduled (%s)", spec))
	}

	logger.Info("watch mode started, press Ctrl+C to exit")
	waitForShutdown(logger)
}

func printSummary(result analyzer.Result) {
	fmt.Println(summaryText(result))
}

func summaryText(result analyzer.Result) string {
	out := "Flight analysis completed\n"
	if basic := result["basic_stats"]; basic != nil {
		out += fmt.Sprintf("  Flights analyzed: %v\n", basic["total_flights"])
		if dr, ok := basic["date_range"].(map[string]any); ok && dr["start"] != nil {
			out += fmt.Sprintf("  Data period: %v to %v\n", dr["start"], dr["end"])
		}
	}
	if eff := result["efficiency_metrics"]; eff != nil {
		if rate, ok := eff["on_time_performance"].(float64); ok {
			out += fmt.Sprintf("  On-time performance: %.1f%%\n", rate*100)
		}
	}
	return out
}

// startWebUI serves a live tail of the log at /logs.
func startWebUI(logger *storage.Logger) {
	http.HandleFunc("/logs", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		logChan := logger.Subscribe()
		for {
			select {
			case msg := <-logChan:
				if _, err := fmt.Fprint(w, msg); err != nil {
					return
				}
				if f, ok := w.(http.Flusher); ok {
					f.Flush()
				}
			case <-r.Context().Done():
				return
			}
		}
	})
	http.ListenAndServe(":8080", nil)
}

func waitForShutdown(logger *storage.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	logger.Info("received signal: " + sig.String() + ", shutting down...")
}
