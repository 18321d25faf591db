// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies a catalog entry.
type Id int

const (
	InterpreterNotFoundId Id = iota + 1
	EntrypointNotFoundId
	InstallFailedId
	ManifestNotFoundId
	ConfigLoadFailedId
	VenvCorruptId
)

type (
	// MarkdownMsg is Markdown text that will be rendered to the terminal.
	MarkdownMsg string

	// HttpLink is a documentation or external reference URL.
	HttpLink string

	// Issue is a catalog entry: a rendered help card shown after a
	// user-facing failure, with pointers to relevant docs.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		docLinks []HttpLink
	}
)

func (i *Issue) Id() Id { return i.id }

func (i *Issue) MarkdownMsg() MarkdownMsg { return i.mdMsg }

func (i *Issue) DocLinks() []HttpLink { return slices.Clone(i.docLinks) }

// Render renders the issue card as styled terminal output.
func (i *Issue) Render(stylePath string) (string, error) {
	md := string(i.mdMsg)
	if len(i.docLinks) > 0 {
		md += "\n\n## See also\n"
		for _, link := range i.docLinks {
			md += "- " + string(link) + "\n"
		}
	}
	return render(md, stylePath)
}

// render is a package-level indirection so tests can stub glamour out.
var render = glamour.Render

var (
	interpreterNotFoundIssue = &Issue{
		id: InterpreterNotFoundId,
		mdMsg: `
# No Python interpreter found

pylot could not resolve a Python interpreter, neither inside a virtual
environment nor on your PATH.

## Things you can try
- Create a virtual environment in your project directory:
~~~
$ python3 -m venv .venv
~~~
- Or install Python and make sure it is on your PATH.`,
		docLinks: []HttpLink{"https://docs.python.org/3/library/venv.html"},
	}

	entrypointNotFoundIssue = &Issue{
		id: EntrypointNotFoundId,
		mdMsg: `
# Application entry point not found

The configured entry point file does not exist, so there is nothing to launch.

## Things you can try
- Run pylot from your project root directory.
- Point pylot at the right file in your config:
~~~cue
entrypoint: "backend/app.py"
~~~`,
	}

	installFailedIssue = &Issue{
		id: InstallFailedId,
		mdMsg: `
# Dependency installation failed

pip exited with an error while installing the declared dependencies.

## Things you can try
- Check network connectivity and package index availability.
- Inspect the pip output above for the failing package.
- To launch anyway (offline/dev convenience), run without --strict.`,
		docLinks: []HttpLink{"https://pip.pypa.io/en/stable/cli/pip_install/"},
	}

	manifestNotFoundIssue = &Issue{
		id: ManifestNotFoundId,
		mdMsg: `
# No dependency manifest found

Neither a requirements.txt nor a pyproject.toml was found, so the install
step has nothing to do.

## Things you can try
- Declare dependencies in a requirements.txt next to your entry point.
- Or set an explicit manifest path in your config:
~~~cue
manifest: "deps/requirements.txt"
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Configuration could not be loaded

Your pylot.cue config file exists but failed to parse or validate.

## Things you can try
- Check the file for CUE syntax errors.
- Regenerate a default config:
~~~
$ pylot config init
~~~`,
	}

	venvCorruptIssue = &Issue{
		id: VenvCorruptId,
		mdMsg: `
# Virtual environment looks corrupt

An activation descriptor was found, but the environment behind it is missing
its interpreter. pylot fell back to the ambient system environment.

## Things you can try
- Recreate the environment:
~~~
$ rm -rf .venv && python3 -m venv .venv
~~~`,
	}

	catalog = map[Id]*Issue{
		InterpreterNotFoundId: interpreterNotFoundIssue,
		EntrypointNotFoundId:  entrypointNotFoundIssue,
		InstallFailedId:       installFailedIssue,
		ManifestNotFoundId:    manifestNotFoundIssue,
		ConfigLoadFailedId:    configLoadFailedIssue,
		VenvCorruptId:         venvCorruptIssue,
	}
)

// Get returns the catalog entry for the given id, or nil when the id is
// not in the catalog.
func Get(id Id) *Issue {
	return catalog[id]
}

// Ids returns all catalog ids in ascending order.
func Ids() []Id {
	ids := maps.Keys(catalog)
	slices.Sort(ids)
	return ids
}
