package socket

import (
	"os"
	"testing"
	"time"
)

func TestServerClient(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	// Create a server
	pid := os.Getpid()
	server, err := NewServer(pid)
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}
	defer server.Stop()

	// Start the server
	server.Start()

	// Wait a bit for server to be ready
	time.Sleep(100 * time.Millisecond)

	// Create a client
	client, err := NewClient(server.SocketPath())
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	// Send a message
	msg := Message{
		Command: CommandGoto,
		Target:  "getting-started",
	}

	response, err := client.Send(msg)
	if err != nil {
		t.Fatalf("Failed to send message: %v", err)
	}

	if !response.Success {
		t.Errorf("Expected success=true, got success=false: %s", response.Message)
	}

	// Receive the message from the server
	select {
	case receivedMsg := <-server.Messages():
		if receivedMsg.Command != msg.Command {
			t.Errorf("Expected command=%s, got command=%s", msg.Command, receivedMsg.Command)
		}
		if receivedMsg.Target != msg.Target {
			t.Errorf("Expected target=%s, got target=%s", msg.Target, receivedMsg.Target)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("Timeout waiting for message")
	}
}

func TestFindRunningInstance(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	// Create a server
	pid := os.Getpid()
	server, err := NewServer(pid)
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}
	defer server.Stop()

	server.Start()

	// Wait a bit for server to be ready
	time.Sleep(100 * time.Millisecond)

	// Find the running instance
	socketPath, foundPid, err := FindRunningInstance()
	if err != nil {
		t.Fatalf("Failed to find running instance: %v", err)
	}

	if socketPath != server.SocketPath() {
		t.Errorf("Expected socketPath=%s, got socketPath=%s", server.SocketPath(), socketPath)
	}

	if foundPid != pid {
		t.Errorf("Expected pid=%d, got pid=%d", pid, foundPid)
	}
}

func TestFindRunningInstanceNone(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	if _, _, err := FindRunningInstance(); err == nil {
		t.Fatal("Expected error when no instance is running")
	}
}

func TestSendGoto(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	// Create a server
	server, err := NewServer(os.Getpid())
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}
	defer server.Stop()

	server.Start()
	time.Sleep(100 * time.Millisecond)

	client, err := NewClient(server.SocketPath())
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	// Use the convenience method
	response, err := client.SendGoto("introduction")
	if err != nil {
		t.Fatalf("Failed to send goto: %v", err)
	}

	if !response.Success {
		t.Errorf("Expected success=true, got success=false: %s", response.Message)
	}

	select {
	case msg := <-server.Messages():
		if msg.Command != CommandGoto {
			t.Errorf("Expected command=%s, got command=%s", CommandGoto, msg.Command)
		}
		if msg.Target != "introduction" {
			t.Errorf("Expected target='introduction', got target='%s'", msg.Target)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("Timeout waiting for message")
	}
}

func TestSendOpen(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	server, err := NewServer(os.Getpid())
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}
	defer server.Stop()

	server.Start()
	time.Sleep(100 * time.Millisecond)

	client, err := NewClient(server.SocketPath())
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	response, err := client.SendOpen("/docs/guide.md")
	if err != nil {
		t.Fatalf("Failed to send open: %v", err)
	}

	if !response.Success {
		t.Errorf("Expected success=true, got success=false: %s", response.Message)
	}

	select {
	case msg := <-server.Messages():
		if msg.Command != CommandOpen {
			t.Errorf("Expected command=%s, got command=%s", CommandOpen, msg.Command)
		}
		if msg.Target != "/docs/guide.md" {
			t.Errorf("Expected target='/docs/guide.md', got target='%s'", msg.Target)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("Timeout waiting for message")
	}
}
