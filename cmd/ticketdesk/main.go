package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-ticketdesk"
	"github.com/goliatone/go-ticketdesk/pkg/client"
	"github.com/goliatone/go-ticketdesk/pkg/codec"
	"github.com/goliatone/go-ticketdesk/pkg/controller"
	"github.com/goliatone/go-ticketdesk/pkg/model"
	"github.com/goliatone/go-ticketdesk/pkg/prompt"
	"github.com/goliatone/go-ticketdesk/pkg/render"
	"github.com/goliatone/go-ticketdesk/pkg/renderers/text"
	"github.com/goliatone/go-ticketdesk/pkg/renderers/vanilla"
	listsync "github.com/goliatone/go-ticketdesk/pkg/sync"
)

func main() {
	configPath := flag.String("config", "ticketdesk.yaml", "client config file")
	format := flag.String("format", "text", "list output renderer (text or vanilla)")
	id := flag.String("id", "", "ticket id for edit/delete")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <list|add|edit|delete>\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()

	app, err := buildApp(ctx, *configPath, *format)
	if err != nil {
		log.Fatalf("setup failed: %v", err)
	}

	if err := app.run(ctx, command, *id); err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			os.Exit(130)
		}
		log.Fatalf("%s failed: %v", command, err)
	}
}

type app struct {
	form   model.FormModel
	codec  *codec.Codec
	client *client.Client
	sync   *listsync.Synchronizer
	ctrl   *controller.Controller
	filler *prompt.Filler
}

func buildApp(ctx context.Context, configPath, format string) (*app, error) {
	cfg, err := client.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	apiClient, err := client.NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	form, err := ticketdesk.DefaultForm(ctx)
	if err != nil {
		return nil, err
	}

	registry := render.NewRegistry()
	registry.MustRegister(text.New())
	cardRenderer, err := vanilla.New()
	if err != nil {
		return nil, err
	}
	registry.MustRegister(cardRenderer)

	renderer, err := registry.Get(format)
	if err != nil {
		return nil, err
	}

	view, err := listsync.NewRendererView(renderer, listsync.NewWriterSink(os.Stdout), render.RenderOptions{})
	if err != nil {
		return nil, err
	}

	synchronizer, err := listsync.New(apiClient, view)
	if err != nil {
		return nil, err
	}

	driver := prompt.NewSurveyDriver()
	formCodec := codec.New(form)
	ctrl, err := controller.New(formCodec, apiClient, synchronizer,
		controller.WithOverlay(controller.NewWriterOverlay(os.Stdout)),
		controller.WithConfirmer(controller.NewPromptConfirmer(driver)),
	)
	if err != nil {
		return nil, err
	}

	return &app{
		form:   form,
		codec:  formCodec,
		client: apiClient,
		sync:   synchronizer,
		ctrl:   ctrl,
		filler: prompt.NewFiller(prompt.WithDriver(driver)),
	}, nil
}

func (a *app) run(ctx context.Context, command, id string) error {
	switch command {
	case "list":
		_, err := a.sync.Refresh(ctx)
		return err

	case "add":
		if err := a.ctrl.BeginCreate(ctx); err != nil {
			return err
		}
		snap, err := a.filler.Fill(ctx, a.form, a.ctrl.Draft())
		if err != nil {
			return err
		}
		return a.ctrl.Submit(ctx, snap)

	case "edit":
		record, err := a.findRecord(ctx, id)
		if err != nil {
			return err
		}
		if err := a.ctrl.BeginEdit(ctx, record); err != nil {
			return err
		}
		snap, err := a.filler.Fill(ctx, a.form, a.ctrl.Draft())
		if err != nil {
			return err
		}
		return a.ctrl.Submit(ctx, snap)

	case "delete":
		if id == "" {
			return errors.New("delete requires -id")
		}
		return a.ctrl.Delete(ctx, id)

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) findRecord(ctx context.Context, id string) (model.Record, error) {
	if id == "" {
		return nil, errors.New("edit requires -id")
	}
	records, err := a.client.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if record.ID() == id {
			return record, nil
		}
	}
	return nil, fmt.Errorf("ticket %q not found", id)
}
