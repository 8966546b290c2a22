package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ZeroDay-Lk/vuldb/blog/domain"
	"github.com/ZeroDay-Lk/vuldb/blog/persistence"
	"github.com/ZeroDay-Lk/vuldb/internal/logger"
	"github.com/ZeroDay-Lk/vuldb/shared/store"
)

var seedFile string

type seedAuthor struct {
	Name   string `yaml:"name"`
	Avatar string `yaml:"avatar"`
}

type seedPost struct {
	Title    string `yaml:"title"`
	Excerpt  string `yaml:"excerpt"`
	Content  string `yaml:"content"`
	Category string `yaml:"category"`
	ReadTime string `yaml:"read_time"`
	ImageSrc string `yaml:"image_src"`
	Featured bool   `yaml:"featured"`
}

type seedData struct {
	Author seedAuthor `yaml:"author"`
	Posts  []seedPost `yaml:"posts"`
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample posts and a default author into the store",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		logger.Setup(cfg.App.LogLevel)

		data, err := loadSeedData(seedFile)
		if err != nil {
			return err
		}

		client, err := store.Connect(store.Config{
			URL:       cfg.Surreal.URL,
			Username:  cfg.Surreal.Username,
			Password:  cfg.Surreal.Password,
			Namespace: cfg.Surreal.Namespace,
			Database:  cfg.Surreal.Database,
		})
		if err != nil {
			return err
		}
		defer client.Close()

		if err := ensureAuthor(client, data.Author); err != nil {
			return err
		}

		repo := persistence.NewPostRepository(client)
		ctx := context.Background()

		for _, post := range data.Posts {
			id, err := repo.Create(ctx, domain.PostDraft{
				Title:    post.Title,
				Excerpt:  post.Excerpt,
				Content:  post.Content,
				Category: post.Category,
				ReadTime: post.ReadTime,
				ImageSrc: post.ImageSrc,
				Featured: post.Featured,
			})
			if err != nil {
				return fmt.Errorf("failed to seed post %q: %w", post.Title, err)
			}
			log.Info().Str("id", id).Str("title", post.Title).Msg("Seeded post")
		}

		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "seed file (default: built-in samples)")
	rootCmd.AddCommand(seedCmd)
}

func loadSeedData(path string) (seedData, error) {
	raw := []byte(defaultSeed)
	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return seedData{}, fmt.Errorf("failed to read seed file: %w", err)
		}
	}

	var data seedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return seedData{}, fmt.Errorf("failed to parse seed file: %w", err)
	}

	return data, nil
}

// ensureAuthor creates the default author record when the authors table is
// empty, so that post creation has someone to attribute posts to.
func ensureAuthor(conn store.Conn, author seedAuthor) error {
	res, err := conn.Query("SELECT id FROM authors LIMIT 1", nil)
	if err != nil {
		return fmt.Errorf("failed to check authors: %w", err)
	}

	if hasRows(res) {
		return nil
	}

	if _, err := conn.Query("CREATE authors CONTENT { name: $name, avatar: $avatar }", map[string]any{
		"name":   author.Name,
		"avatar": author.Avatar,
	}); err != nil {
		return fmt.Errorf("failed to create default author: %w", err)
	}

	log.Info().Str("name", author.Name).Msg("Created default author")
	return nil
}

// hasRows reports whether a raw query response carries at least one result
// row.
func hasRows(res any) bool {
	results, ok := res.([]any)
	if !ok || len(results) == 0 {
		return false
	}

	first, ok := results[0].(map[string]any)
	if !ok {
		return false
	}

	rows, ok := first["result"].([]any)
	return ok && len(rows) > 0
}

const defaultSeed = `
author:
  name: Alex Johnson
  avatar: https://i.pravatar.cc/100?img=1
posts:
  - title: Understanding Cross-Site Scripting (XSS) Vulnerabilities
    excerpt: A comprehensive guide to XSS attacks, their types, and how to protect your web applications from these common security threats.
    category: XSS
    read_time: 8 min read
    image_src: https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d
    featured: true
    content: |
      # Understanding Cross-Site Scripting (XSS) Vulnerabilities

      Cross-site scripting (XSS) remains one of the most prevalent web application security vulnerabilities. It allows attackers to inject malicious scripts into web pages viewed by other users.

      ## What is XSS?

      XSS occurs when an application includes untrusted data in a new web page without proper validation or escaping.

      ### Types of XSS Attacks

      The three classic variants are:
      - Reflected XSS, where the payload arrives with the request
      - Stored XSS, where the payload is persisted by the server
      - DOM-based XSS, where the sink lives entirely in client code

      ` + "```" + `javascript
      // Vulnerable code example
      const searchQuery = req.query.q;
      res.send('<p>Search results for: ' + searchQuery + '</p>'); // Dangerous!
      ` + "```" + `

      ## Prevention

      Always encode output for the context it lands in, and validate input on the server.
  - title: SQL Injection Attacks and Defense Strategies
    excerpt: Learn how SQL injection works, why it is still so common, and the parameterization techniques that stop it cold.
    category: SQL Injection
    read_time: 6 min read
    content: |
      # SQL Injection Attacks and Defense Strategies

      SQL injection exploits applications that build queries by concatenating untrusted input.

      ` + "```" + `sql
      SELECT * FROM users WHERE name = '' OR '1'='1';
      ` + "```" + `

      ## Defense

      Use parameterized queries everywhere. Never interpolate user input into SQL text.
`
