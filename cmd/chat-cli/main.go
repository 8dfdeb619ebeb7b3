// Command chat-cli is a terminal client for the chat API. It mirrors the
// website widget: the shortlist is computed locally from the embedded
// catalog, the lead gate is evaluated before sending, and the transcript is
// cached on disk so a restart restores the conversation.
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bluepeak_backend/internal/chat/memory"
	"bluepeak_backend/internal/chat/query"
	chatservice "bluepeak_backend/internal/chat/service"
	chattransport "bluepeak_backend/internal/chat/transport"
	listingsrepo "bluepeak_backend/internal/listings/repository"
	listingsservice "bluepeak_backend/internal/listings/service"
	listingstransport "bluepeak_backend/internal/listings/transport"
	"bluepeak_backend/platform/currency"
	"bluepeak_backend/platform/logger"
)

func main() {
	server := flag.String("server", "http://localhost:5050", "chat API base URL")
	lang := flag.String("lang", "en", "reply language (en or sq)")
	memPath := flag.String("memory", defaultMemoryPath(), "transcript cache file")
	name := flag.String("name", "", "contact name for viewing requests")
	email := flag.String("email", "", "contact email for viewing requests")
	phone := flag.String("phone", "", "contact phone for viewing requests")
	rate := flag.Float64("eur-usd-rate", currency.DefaultEURToUSD, "EUR to USD rate for price ceilings")
	reset := flag.Bool("reset", false, "discard the cached transcript before starting")
	flag.Parse()

	log := logger.New("development")

	repo, err := listingsrepo.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load listings catalog:", err)
		os.Exit(1)
	}
	conv := currency.NewConverter(*rate)
	catalog := listingsservice.New(repo, conv, log)
	interp := query.NewInterpreter(conv)

	store := memory.Open(*memPath)
	if *reset {
		store.Clear()
	}

	lead := &chattransport.Lead{Name: *name, Email: *email, Phone: *phone}

	snap := store.Snapshot()
	if len(snap.Messages) > 0 {
		fmt.Printf("restored %d cached messages\n\n", len(snap.Messages))
		for _, m := range snap.Messages {
			printMessage(m.Role, m.Content)
		}
	}

	client := &http.Client{Timeout: 60 * time.Second}
	in := bufio.NewScanner(os.Stdin)

	fmt.Println(`type a message, "/reset" to clear the conversation, "/quit" to exit`)
	for {
		fmt.Print("> ")
		if !in.Scan() {
			return
		}
		text := strings.TrimSpace(in.Text())
		if text == "" {
			continue
		}

		switch text {
		case "/quit", "/exit":
			return
		case "/reset":
			store.Clear()
			fmt.Println("conversation cleared")
			continue
		}

		// The gate runs here as well as on the server so the contact
		// details travel with the booking turn itself.
		if chatservice.RequiresLead(text, lead) {
			fmt.Println("to request a viewing we need your contact details first")
			if !promptLead(in, lead) {
				return
			}
		}

		store.Append(memory.Message{Role: "user", Content: text})

		shortlist := catalog.Shortlist(interp.Parse(text), 0)
		resp, err := send(client, *server, *lang, lead, store.Snapshot(), shortlist)
		if err != nil {
			fmt.Fprintln(os.Stderr, "request failed:", err)
			continue
		}

		store.SetConversationID(resp.ConversationID)
		store.Append(memory.Message{Role: "assistant", Content: resp.Reply})
		printMessage("assistant", resp.Reply)
	}
}

// send performs one conversation turn against the chat API.
func send(client *http.Client, server, lang string, lead *chattransport.Lead, snap memory.Snapshot, shortlist []listingstransport.ShortlistEntry) (*chattransport.ChatResponse, error) {
	msgs := make([]chattransport.ChatMessage, 0, len(snap.Messages))
	for _, m := range snap.Messages {
		msgs = append(msgs, chattransport.ChatMessage{Role: m.Role, Content: m.Content})
	}

	req := chattransport.ChatRequest{
		ConversationID: snap.ConversationID,
		Messages:       msgs,
		Language:       lang,
		Context:        shortlist,
	}
	if lead.Complete() {
		req.Lead = lead
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpResp, err := client.Post(strings.TrimRight(server, "/")+"/api/chat", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned %s", httpResp.Status)
	}

	var resp chattransport.ChatResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// promptLead fills in the missing contact fields interactively. It returns
// false when stdin closes mid-prompt.
func promptLead(in *bufio.Scanner, lead *chattransport.Lead) bool {
	fields := []struct {
		label string
		dst   *string
	}{
		{"name", &lead.Name},
		{"email", &lead.Email},
		{"phone", &lead.Phone},
	}
	for _, f := range fields {
		if strings.TrimSpace(*f.dst) != "" {
			continue
		}
		fmt.Printf("%s: ", f.label)
		if !in.Scan() {
			return false
		}
		*f.dst = strings.TrimSpace(in.Text())
	}
	return true
}

func printMessage(role, content string) {
	prefix := "you"
	if role == "assistant" {
		prefix = "assistant"
	}
	fmt.Printf("[%s] %s\n", prefix, content)
}

func defaultMemoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "chat_memory.json"
	}
	return filepath.Join(home, ".bluepeak", "chat_memory.json")
}
