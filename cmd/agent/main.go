package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"action-agent/internal/application/port/input"
	"action-agent/internal/di"
	"action-agent/internal/infrastructure/console"
	"action-agent/internal/infrastructure/env"
)

func main() {
	envService := env.NewEnvService()

	providersFlag := flag.String("providers", "", "comma-separated provider names (default: all registered)")
	mockLLM := flag.Bool("mock-llm", envService.GetBool("USE_MOCK_LLM", true), "use the pattern interpreter instead of the LLM")
	headless := flag.Bool("headless", envService.GetBool("HEADLESS", true), "run the browser headless")
	flag.Parse()

	instruction := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if instruction == "" {
		fmt.Println("\nEnter an instruction for the agent:")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			log.Fatal("failed to read input: ", err)
		}
		instruction = strings.TrimSpace(line)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	container, err := di.NewContainer(ctx, di.Config{
		Headless:         *headless,
		LogLevel:         orDefault(envService.Get("LOG_LEVEL"), "info"),
		OpenRouterAPIKey: envService.Get("OPENROUTER_API_KEY"),
		OpenRouterModel:  envService.Get("OPENROUTER_MODEL_NAME"),
		UnitTimeout:      envService.GetDuration("EXECUTION_TIMEOUT", 60*time.Second),
	}, envService)
	if err != nil {
		log.Fatalf("initialization failed: %v", err)
	}
	defer container.Close()

	exec := container.PatternExecutor
	if !*mockLLM && container.GenerativeExecutor != nil {
		exec = container.GenerativeExecutor
	}

	var providers []string
	if *providersFlag != "" {
		for _, name := range strings.Split(*providersFlag, ",") {
			providers = append(providers, strings.TrimSpace(name))
		}
	}

	container.Logger.Info("Instruction started", "instruction", instruction)

	resp, err := exec.Execute(ctx, input.ExecuteRequest{
		Instruction: instruction,
		Providers:   providers,
		Credentials: container.Credentials,
	})
	if err != nil {
		container.Logger.Error("Execution failed", "error", err)
		fmt.Printf("\nExecution failed: %v\n", err)
		os.Exit(1)
	}

	console.NewPrinter().PrintResponse(resp)
}

func orDefault(val, def string) string {
	if val == "" {
		return def
	}
	return val
}
