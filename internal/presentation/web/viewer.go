package web

// viewerHTML is the page served at /. It fetches the Mermaid source from
// /graph.mmd and renders it in the browser via the mermaid CDN bundle.
const viewerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Tendril Graph Viewer</title>
    <style>
        body { font-family: system-ui, sans-serif; margin: 2rem; color: #1f2430; }
        header { display: flex; align-items: baseline; gap: 1rem; }
        header h1 { margin: 0; font-size: 1.4rem; }
        header nav a { margin-right: 0.75rem; color: #0e7490; }
        #graph { margin-top: 1.5rem; overflow-x: auto; }
        footer { margin-top: 2rem; font-size: 0.8rem; color: #6b7280; }
    </style>
</head>
<body>
<header>
    <h1>Tendril Graph Viewer</h1>
    <nav>
        <a href="/graph.dot">dot</a>
        <a href="/graph.mmd">mermaid</a>
        <a href="/api/graph">json</a>
        <a href="/metrics">metrics</a>
    </nav>
</header>
<div id="graph">loading…</div>
<script src="https://unpkg.com/mermaid@10.9.1/dist/mermaid.min.js" crossorigin></script>
<script>
    mermaid.initialize({ startOnLoad: false });
    window.onload = async () => {
        const el = document.getElementById('graph');
        try {
            const resp = await fetch('/graph.mmd');
            const source = await resp.text();
            const { svg } = await mermaid.render('tendril-graph', source);
            el.innerHTML = svg;
        } catch (err) {
            el.textContent = 'failed to render graph: ' + err;
        }
    };
</script>
<footer>gradients are a snapshot taken when the server was started</footer>
</body>
</html>
`
