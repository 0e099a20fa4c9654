package main

import (
	"context"
	"fmt"
	"os"

	"go-internship-backend/internal/importer"
	"go-internship-backend/internal/repository/postgres"
	"go-internship-backend/pkg/database"
	"go-internship-backend/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	_ = godotenv.Load()
	logger.Init(os.Getenv("APP_ENV"))

	app := &cli.App{
		Name:  "seed",
		Usage: "load internship listings into the database",
		Commands: []*cli.Command{
			importCommand(),
			templateCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func importCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "import internships from an .xlsx workbook",
		ArgsUsage: "<workbook.xlsx>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "database-url",
				Usage:   "PostgreSQL connection string",
				EnvVars: []string{"DATABASE_URL"},
			},
			&cli.StringFlag{
				Name:  "sheet",
				Usage: "sheet to read (default: first sheet)",
			},
			&cli.BoolFlag{
				Name:  "migrate",
				Usage: "apply pending migrations before importing",
				Value: true,
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "parse and report without writing",
			},
		},
		Action: runImport,
	}
}

func runImport(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit("workbook path is required", 2)
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	internships, err := importer.ReadInternships(file, c.String("sheet"))
	if err != nil {
		return err
	}
	logger.Log.Info("Parsed workbook", "file", path, "rows", len(internships))

	if c.Bool("dry-run") {
		fmt.Fprintf(c.App.Writer, "%d internships parsed, nothing written\n", len(internships))
		return nil
	}

	dsn := c.String("database-url")
	if dsn == "" {
		return cli.Exit("DATABASE_URL is required", 2)
	}

	if c.Bool("migrate") {
		if err := database.RunMigrations(dsn); err != nil {
			return err
		}
	}

	ctx := context.Background()
	pool, err := database.NewPostgresConnection(ctx, dsn)
	if err != nil {
		return err
	}
	defer pool.Close()

	n, err := postgres.NewInternshipRepository(pool).BulkCreate(ctx, internships)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "%d internships imported\n", n)
	return nil
}

func templateCommand() *cli.Command {
	return &cli.Command{
		Name:  "template",
		Usage: "write an empty workbook with the expected columns",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Value:   "internships.xlsx",
			},
		},
		Action: func(c *cli.Context) error {
			f, err := os.Create(c.String("out"))
			if err != nil {
				return err
			}
			if err := importer.WriteTemplate(f); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
}
