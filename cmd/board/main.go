// Command board drives the projects API from the terminal the way
// the frontend page does: load the list, or submit a new project and
// print the optimistically updated list.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"watson/board"
	"watson/client"
	"watson/models"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:4000"
	}

	if len(os.Args) < 2 {
		usage()
	}

	api := client.New(baseURL)
	b := board.New(api)
	ctx := context.Background()

	switch os.Args[1] {
	case "list":
		b.LoadProjects(ctx)
		if b.Err != "" {
			log.Fatal("Failed to load projects: ", b.Err)
		}
		printProjects(b.Projects)

	case "submit":
		fs := flag.NewFlagSet("submit", flag.ExitOnError)
		title := fs.String("title", "", "project title")
		description := fs.String("description", "", "project description")
		skills := fs.String("skills", "", "comma-separated skills")
		deadline := fs.String("deadline", "", "deadline (YYYY-MM-DD)")
		fs.Parse(os.Args[2:])

		b.LoadProjects(ctx)
		if b.Err != "" {
			log.Fatal("Failed to load projects: ", b.Err)
		}

		b.Form = board.Form{
			Title:       *title,
			Description: *description,
			Skills:      *skills,
			Deadline:    *deadline,
		}
		b.SubmitProject(ctx)
		if b.Err != "" {
			log.Fatal("Failed to submit project: ", b.Err)
		}

		fmt.Println("Project submitted")
		printProjects(b.Projects)

	default:
		usage()
	}
}

func printProjects(projects []models.Project) {
	fmt.Printf("Available projects (%d)\n", len(projects))
	for _, p := range projects {
		deadline := "none"
		if p.Deadline != nil {
			deadline = *p.Deadline
		}
		fmt.Printf("  #%d %s\n      %s\n      skills: %s  deadline: %s  posted: %s\n",
			p.ID, p.Title, p.Description, p.Skills, deadline,
			p.CreatedAt.Format("2006-01-02"))
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: board list | board submit -title ... -description ... -skills ... -deadline ...")
	os.Exit(2)
}
