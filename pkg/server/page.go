package server

// page is the interactive viewer. It draws /render/svg, collects two clicked
// dots, and redraws with the path from /api/path highlighted.
const page = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>dotpath</title>
<style>
  body { margin: 0; background: #1e1e1e; color: #ddd; font-family: sans-serif; }
  header { display: flex; gap: 1em; align-items: center; padding: 0.5em 1em; }
  #scene { display: flex; justify-content: center; }
  #scene circle.dot { cursor: pointer; }
  #scene line { pointer-events: none; }
  #status { min-height: 1.2em; }
  button { background: #333; color: #ddd; border: 1px solid #555; padding: 0.3em 0.8em; }
</style>
</head>
<body>
<header>
  <button id="new">New scene</button>
  <button id="clear">Clear</button>
  <span id="status">Click two dots.</span>
</header>
<div id="scene"></div>
<script>
const sceneEl = document.getElementById("scene");
const statusEl = document.getElementById("status");
let picked = [];

async function draw(query) {
  const res = await fetch("/render/svg" + (query || "?animate=true"));
  if (!res.ok) {
    statusEl.textContent = (await res.json()).error.message;
    return;
  }
  sceneEl.innerHTML = await res.text();
}

async function pick(id) {
  if (picked.length === 2) picked = [];
  picked.push(id);
  if (picked.length === 1) {
    await draw("?from=" + id + "&to=" + id);
    statusEl.textContent = "From " + id + ", pick a second dot.";
    return;
  }
  const [from, to] = picked;
  const res = await fetch("/api/path?from=" + from + "&to=" + to);
  const body = await res.json();
  if (!res.ok) {
    statusEl.textContent = body.error.message;
    return;
  }
  statusEl.textContent = body.found
    ? body.path.join(" → ") + " (" + body.hops + " hops)"
    : body.message;
  await draw("?from=" + from + "&to=" + to);
}

sceneEl.addEventListener("click", (ev) => {
  const dot = ev.target.closest("circle.dot");
  if (dot) pick(Number(dot.dataset.number));
});

document.getElementById("clear").addEventListener("click", () => {
  picked = [];
  statusEl.textContent = "Click two dots.";
  draw("?animate=false");
});

document.getElementById("new").addEventListener("click", async () => {
  picked = [];
  const res = await fetch("/api/scene", { method: "POST" });
  if (!res.ok) {
    statusEl.textContent = (await res.json()).error.message;
    return;
  }
  statusEl.textContent = "Click two dots.";
  draw();
});

draw();
</script>
</body>
</html>
`
