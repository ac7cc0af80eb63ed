package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
	owner   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "finova-cli",
		Short: "Finova CLI tool",
		Long:  `A command line interface for interacting with the Finova bookkeeping API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Finova API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&owner, "owner", "admin", "Ledger owner")

	// Journal commands
	journalCmd := &cobra.Command{
		Use:   "journal",
		Short: "Journal operations",
	}

	var (
		entryDate      string
		entryDebit     string
		entryCredit    string
		entryAmount    string
		entryNarration string
	)

	postCmd := &cobra.Command{
		Use:   "post",
		Short: "Post a journal entry",
		Run: func(cmd *cobra.Command, args []string) {
			postEntry(entryDate, entryDebit, entryCredit, entryAmount, entryNarration)
		},
	}
	postCmd.Flags().StringVar(&entryDate, "date", time.Now().Format("2006-01-02"), "Entry date (YYYY-MM-DD)")
	postCmd.Flags().StringVar(&entryDebit, "debit", "", "Debit account id")
	postCmd.Flags().StringVar(&entryCredit, "credit", "", "Credit account id")
	postCmd.Flags().StringVar(&entryAmount, "amount", "", "Amount")
	postCmd.Flags().StringVar(&entryNarration, "narration", "", "Narration")
	postCmd.MarkFlagRequired("debit")
	postCmd.MarkFlagRequired("credit")
	postCmd.MarkFlagRequired("amount")

	journalCmd.AddCommand(postCmd)
	rootCmd.AddCommand(journalCmd)

	// Report commands
	reportsCmd := &cobra.Command{
		Use:   "reports",
		Short: "Report operations",
	}

	trialBalanceCmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Print the trial balance",
		Run: func(cmd *cobra.Command, args []string) {
			printTrialBalance()
		},
	}

	balanceSheetCmd := &cobra.Command{
		Use:   "balance-sheet",
		Short: "Print the balance sheet and financial position",
		Run: func(cmd *cobra.Command, args []string) {
			printBalanceSheet()
		},
	}

	reportsCmd.AddCommand(trialBalanceCmd)
	reportsCmd.AddCommand(balanceSheetCmd)
	rootCmd.AddCommand(reportsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func getJSON(path string, out any) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	return json.Unmarshal(body, out)
}

func postEntry(date, debit, credit, amount, narration string) {
	payload := map[string]any{
		"owner":     owner,
		"date":      date,
		"debit":     debit,
		"credit":    credit,
		"amount":    amount,
		"narration": narration,
	}
	body, _ := json.Marshal(payload)

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+"/api/v1/journal", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		fmt.Printf("Failed to post entry (Status: %d)\nResponse: %s\n", resp.StatusCode, string(respBody))
		os.Exit(1)
	}

	var created map[string]any
	if err := json.Unmarshal(respBody, &created); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Entry posted: %s\n", created["id"])
}

func printTrialBalance() {
	var tb struct {
		Rows []struct {
			Name   string  `json:"name"`
			Debit  *string `json:"debit"`
			Credit *string `json:"credit"`
		} `json:"rows"`
		TotalDebit  string `json:"total_debit"`
		TotalCredit string `json:"total_credit"`
		Balanced    bool   `json:"balanced"`
		Difference  string `json:"difference"`
	}

	if err := getJSON("/api/v1/reports/trial-balance?owner="+owner, &tb); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Printf("%-30s %15s %15s\n", "Account", "Debit", "Credit")
	for _, row := range tb.Rows {
		fmt.Printf("%-30s %15s %15s\n", row.Name, orBlank(row.Debit), orBlank(row.Credit))
	}
	fmt.Printf("%-30s %15s %15s\n", "Total", tb.TotalDebit, tb.TotalCredit)

	if tb.Balanced {
		fmt.Println("Trial Balance is Balanced!")
	} else {
		fmt.Printf("Trial Balance is not Balanced! Difference: %s\n", tb.Difference)
	}
}

func printBalanceSheet() {
	var bs struct {
		Rows []struct {
			AssetName       string  `json:"asset_name"`
			AssetAmount     *string `json:"asset_amount"`
			LiabilityName   string  `json:"liability_name"`
			LiabilityAmount *string `json:"liability_amount"`
		} `json:"rows"`
		TotalAssets      string `json:"total_assets"`
		TotalLiabilities string `json:"total_liabilities"`
		Balanced         bool   `json:"balanced"`
		Position         struct {
			Status     string `json:"status"`
			Difference string `json:"difference"`
		} `json:"position"`
	}

	if err := getJSON("/api/v1/reports/balance-sheet?owner="+owner, &bs); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Printf("%-25s %12s   %-25s %12s\n", "Assets", "", "Liabilities & Capital", "")
	for _, row := range bs.Rows {
		fmt.Printf("%-25s %12s   %-25s %12s\n",
			row.AssetName, orBlank(row.AssetAmount), row.LiabilityName, orBlank(row.LiabilityAmount))
	}
	fmt.Printf("%-25s %12s   %-25s %12s\n", "Total", bs.TotalAssets, "Total", bs.TotalLiabilities)

	if bs.Balanced {
		fmt.Println("Balance Sheet is Balanced!")
	} else {
		fmt.Println("Balance Sheet is out of Balance!")
	}
	fmt.Printf("Financial position: %s (%s)\n", bs.Position.Status, bs.Position.Difference)
}

func orBlank(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
