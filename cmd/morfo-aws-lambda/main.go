package main

import (
	"context"
	"flag"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	echoadapter "github.com/awslabs/aws-lambda-go-api-proxy/echo"
	"go.uber.org/zap"

	"github.com/morfo-lang/morfo"
	"github.com/morfo-lang/morfo/adapters/cardstore"
	"github.com/morfo-lang/morfo/adapters/literallexicon"
	"github.com/morfo-lang/morfo/adapters/staticlexicon"
	"github.com/morfo-lang/morfo/adapters/webapi"
	"github.com/morfo-lang/morfo/service"
)

var flagCardDir = flag.String("card-dir", "./cards", "Directory with language card files.")
var flagLexiconFile = flag.String("lexicon-file", "./lexicon.json", "JSON lexicon file.")

func main() {
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalln("Failed to initialize logger:", err)
	}

	store, err := cardstore.Open(context.Background(), *flagCardDir)
	if err != nil {
		log.Fatalln("Failed to open card directory:", err)
	}

	lexicons := morfo.CombinedLexicon{}
	if static, err := staticlexicon.Open(*flagLexiconFile, true); err == nil {
		lexicons = append(lexicons, static)
	}
	lexicons = append(lexicons, literallexicon.New())

	svc := &service.Service{Lexicon: lexicons, Cards: store, Logger: logger}
	api := webapi.SetupWithoutListener()

	webapi.Render(api.Group("/api"), svc, logger)

	lambda.Start(echoadapter.New(api).ProxyWithContext)
}
